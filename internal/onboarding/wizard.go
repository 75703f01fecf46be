// File: internal/onboarding/wizard.go

// Package onboarding turns an account into a creator: a welcome step, a
// basic-info form, and a submission that writes the profile and then the
// creator page.
package onboarding

import (
	"strings"
	"sync"

	"creator_support_backend/internal/category"
	"creator_support_backend/internal/creatorpage"
)

// Step is a wizard state.
type Step string

const (
	StepWelcome   Step = "welcome"
	StepBasicInfo Step = "basic-info"
	StepComplete  Step = "complete"
)

// Form is the basic-info form. SupportPrice is kept as typed text and parsed on submit.
type Form struct {
	PageTitle        string                     `json:"page_title"`
	Bio              string                     `json:"bio"`
	Tagline          string                     `json:"tagline"`
	AvatarURL        string                     `json:"avatar_url"`
	CoverImageURL    string                     `json:"cover_image_url"`
	SocialTwitter    string                     `json:"social_twitter"`
	SocialInstagram  string                     `json:"social_instagram"`
	SocialWebsite    string                     `json:"social_website"`
	SupportItemName  string                     `json:"support_item_name"`
	SupportItemEmoji string                     `json:"support_item_emoji"`
	SupportPrice     string                     `json:"support_price"`
	GalleryImages    []creatorpage.GalleryImage `json:"gallery_images"`
	Category         string                     `json:"category"`
	Subcategory      string                     `json:"subcategory"`
}

// DefaultForm is the form a new wizard starts with.
func DefaultForm() Form {
	def, _ := category.Lookup(category.DefaultKey)
	return Form{
		SupportItemName:  creatorpage.DefaultSupportItemName,
		SupportItemEmoji: creatorpage.DefaultSupportItemEmoji,
		SupportPrice:     "5.00",
		GalleryImages:    []creatorpage.GalleryImage{},
		Category:         def.Key,
		Subcategory:      def.FirstSubcategory(),
	}
}

// Details are the free-text fields of the form; category and subcategory
// have their own transitions.
type Details struct {
	PageTitle        string
	Bio              string
	Tagline          string
	AvatarURL        string
	CoverImageURL    string
	SocialTwitter    string
	SocialInstagram  string
	SocialWebsite    string
	SupportItemName  string
	SupportItemEmoji string
	SupportPrice     string
	GalleryImages    []creatorpage.GalleryImage
}

// State is a point-in-time view of a wizard.
type State struct {
	Step       Step `json:"step"`
	Form       Form `json:"form"`
	CanAdvance bool `json:"can_advance"`
	Submitting bool `json:"submitting"`
}

// Wizard holds one account's onboarding progress. It is safe for concurrent use.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	form       Form
	submitting bool
}

// NewWizard starts at the welcome step with the default form.
func NewWizard() *Wizard {
	return &Wizard{step: StepWelcome, form: DefaultForm()}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Form returns a copy of the current form.
func (w *Wizard) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.clone()
}

// State snapshots the wizard.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Step:       w.step,
		Form:       w.form.clone(),
		CanAdvance: w.canAdvanceLocked(),
		Submitting: w.submitting,
	}
}

// Confirm leaves the welcome step.
func (w *Wizard) Confirm() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepWelcome {
		return invalidStep("confirm", w.step)
	}
	w.step = StepBasicInfo
	return nil
}

// Back goes from basic-info to welcome. From welcome it reports exited=true and
// the wizard stays put; the caller leaves onboarding.
func (w *Wizard) Back() (exited bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepWelcome:
		return true, nil
	case StepBasicInfo:
		if w.submitting {
			return false, ErrSubmitInProgress
		}
		w.step = StepWelcome
		return false, nil
	default:
		return false, invalidStep("back", w.step)
	}
}

// UpdateDetails replaces the free-text fields.
func (w *Wizard) UpdateDetails(d Details) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked("update details"); err != nil {
		return err
	}
	gallery := make([]creatorpage.GalleryImage, len(d.GalleryImages))
	copy(gallery, d.GalleryImages)

	w.form.PageTitle = d.PageTitle
	w.form.Bio = d.Bio
	w.form.Tagline = d.Tagline
	w.form.AvatarURL = d.AvatarURL
	w.form.CoverImageURL = d.CoverImageURL
	w.form.SocialTwitter = d.SocialTwitter
	w.form.SocialInstagram = d.SocialInstagram
	w.form.SocialWebsite = d.SocialWebsite
	w.form.SupportItemName = d.SupportItemName
	w.form.SupportItemEmoji = d.SupportItemEmoji
	w.form.SupportPrice = d.SupportPrice
	w.form.GalleryImages = gallery
	return nil
}

// SelectCategory switches category and resets the subcategory to the
// category's first entry.
func (w *Wizard) SelectCategory(key string) error {
	cat, ok := category.Lookup(key)
	if !ok {
		return ErrUnknownCategory
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked("select category"); err != nil {
		return err
	}
	w.form.Category = cat.Key
	w.form.Subcategory = cat.FirstSubcategory()
	return nil
}

// SelectSubcategory picks a subcategory of the current category.
func (w *Wizard) SelectSubcategory(sub string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked("select subcategory"); err != nil {
		return err
	}
	cat, ok := category.Lookup(w.form.Category)
	if !ok || !cat.HasSubcategory(sub) {
		return ErrUnknownSubcategory
	}
	w.form.Subcategory = sub
	return nil
}

// CanAdvance is false until the page title has non-blank text.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAdvanceLocked()
}

// ResumeComplete moves a wizard that has not been started straight to
// complete, for accounts that already own a page.
func (w *Wizard) ResumeComplete() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepWelcome || w.submitting {
		return false
	}
	w.step = StepComplete
	return true
}

// beginSubmit claims the wizard for one submission and returns the form to write.
func (w *Wizard) beginSubmit() (Form, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepBasicInfo {
		return Form{}, invalidStep("submit", w.step)
	}
	if w.submitting {
		return Form{}, ErrSubmitInProgress
	}
	if !w.canAdvanceLocked() {
		return Form{}, ErrPageTitleRequired
	}
	w.submitting = true
	return w.form.clone(), nil
}

func (w *Wizard) endSubmit(completed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if completed {
		w.step = StepComplete
	}
}

func (w *Wizard) canAdvanceLocked() bool {
	return w.step == StepBasicInfo && strings.TrimSpace(w.form.PageTitle) != ""
}

func (w *Wizard) editableLocked(op string) error {
	if w.step != StepBasicInfo {
		return invalidStep(op, w.step)
	}
	if w.submitting {
		return ErrSubmitInProgress
	}
	return nil
}

func (f Form) clone() Form {
	out := f
	out.GalleryImages = make([]creatorpage.GalleryImage, len(f.GalleryImages))
	copy(out.GalleryImages, f.GalleryImages)
	return out
}
