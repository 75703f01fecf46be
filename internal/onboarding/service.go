// File: internal/onboarding/service.go
package onboarding

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"creator_support_backend/internal/category"
	"creator_support_backend/internal/common"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/datastore"
	"creator_support_backend/internal/handle"
	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/session"

	"go.uber.org/zap"
)

// PageIndexer makes a saved page searchable.
type PageIndexer interface {
	IndexPage(ctx context.Context, p *creatorpage.CreatorPage) error
}

// Result describes a completed submission.
type Result struct {
	Profile      *profile.Profile
	Page         *creatorpage.CreatorPage
	Handle       string
	HandleSource handle.Source
}

// Service runs the submission sequence of the wizard.
type Service struct {
	store     datastore.Store
	allocator *handle.Allocator
	indexer   PageIndexer
	logger    *zap.Logger
}

// NewService creates the onboarding service. indexer may be nil.
func NewService(store datastore.Store, allocator *handle.Allocator, indexer PageIndexer, logger *zap.Logger) *Service {
	return &Service{store: store, allocator: allocator, indexer: indexer, logger: logger.Named("onboarding")}
}

// Prepare fast-forwards an untouched wizard to complete when the account
// already owns a page. It returns that page, nil when there is none.
func (s *Service) Prepare(ctx context.Context, sess *session.Session, wz *Wizard) (*creatorpage.CreatorPage, error) {
	user := sess.CurrentUser()
	if user == nil {
		return nil, common.ErrUnauthorized.WithDetails("No signed-in user.")
	}
	page, err := s.store.FindCreatorPageByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if page != nil {
		wz.ResumeComplete()
	}
	return page, nil
}

// Submit runs the forward transition out of basic-info:
//
//	(a) load the account's page and profile,
//	(b) allocate a handle,
//	(c) insert or update the profile,
//	(d) insert or update the creator page.
//
// A blank title returns ErrPageTitleRequired before anything is read. Any
// failure before (c) leaves storage untouched. A failure in (d) returns a
// *PartialWriteError and the profile write from (c) stays in place. The wizard
// only reaches complete when both writes succeed.
func (s *Service) Submit(ctx context.Context, sess *session.Session, wz *Wizard) (*Result, error) {
	user := sess.CurrentUser()
	if user == nil {
		return nil, common.ErrUnauthorized.WithDetails("No signed-in user.")
	}

	form, err := wz.beginSubmit()
	if err != nil {
		return nil, err
	}
	completed := false
	defer func() { wz.endSubmit(completed) }()

	log := s.logger.With(zap.String("userID", user.UserID))

	existingPage, err := s.store.FindCreatorPageByUserID(ctx, user.UserID)
	if err != nil {
		log.Error("Onboarding aborted: page lookup failed", zap.Error(err))
		return nil, fmt.Errorf("loading creator page: %w", err)
	}
	existingProfile, err := s.store.FindProfileByUserID(ctx, user.UserID)
	if err != nil {
		log.Error("Onboarding aborted: profile lookup failed", zap.Error(err))
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	req := handle.Request{
		Base:      handle.DeriveBase(user.Email),
		AccountID: user.UserID,
	}
	if existingPage != nil {
		req.ExistingPageHandle = existingPage.Handle
	}
	if existingProfile != nil {
		req.ProfileHandle = existingProfile.Handle
	}
	alloc, err := s.allocator.Allocate(ctx, req, handle.StoreChecks(s.store))
	if err != nil {
		log.Error("Onboarding aborted: handle allocation failed", zap.Error(err))
		return nil, fmt.Errorf("allocating handle: %w", err)
	}
	log.Info("Handle allocated", zap.String("handle", alloc.Handle), zap.Stringer("source", alloc.Source), zap.Int("attempts", alloc.Attempts))

	prof := applyProfile(existingProfile, user.UserID, alloc.Handle, form)
	if existingProfile == nil {
		err = s.store.InsertProfile(ctx, prof)
	} else {
		err = s.store.UpdateProfile(ctx, prof)
	}
	if err != nil {
		log.Error("Onboarding aborted: profile write failed", zap.Error(err))
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	page := applyPage(existingPage, user.UserID, alloc.Handle, form)
	if existingPage == nil {
		err = s.store.InsertCreatorPage(ctx, page)
	} else {
		err = s.store.UpdateCreatorPage(ctx, page)
	}
	if err != nil {
		log.Error("Creator page write failed after profile was saved", zap.Error(err))
		return nil, &PartialWriteError{ProfileWritten: true, Err: err}
	}
	completed = true

	if s.indexer != nil {
		if err := s.indexer.IndexPage(ctx, page); err != nil {
			log.Warn("Failed to index creator page", zap.String("pageID", page.ID.String()), zap.Error(err))
		}
	}
	if err := sess.RefreshProfile(ctx); err != nil {
		log.Warn("Failed to refresh session profile after onboarding", zap.Error(err))
	}

	log.Info("Creator page saved", zap.String("pageID", page.ID.String()), zap.Bool("created", existingPage == nil))
	return &Result{Profile: prof, Page: page, Handle: alloc.Handle, HandleSource: alloc.Source}, nil
}

func applyProfile(existing *profile.Profile, userID, allocated string, f Form) *profile.Profile {
	p := &profile.Profile{UserID: userID, Handle: allocated}
	if existing != nil {
		cp := *existing
		p = &cp
		if !p.HasHandle() {
			p.Handle = allocated
		}
	}
	p.DisplayName = strings.TrimSpace(f.PageTitle)
	p.IsCreator = true
	p.Category = f.Category
	p.Subcategory = f.Subcategory
	p.Bio = f.Bio
	p.AvatarURL = f.AvatarURL
	p.CoverImageURL = f.CoverImageURL
	return p
}

func applyPage(existing *creatorpage.CreatorPage, userID, allocated string, f Form) *creatorpage.CreatorPage {
	p := &creatorpage.CreatorPage{UserID: userID, Handle: allocated}
	if existing != nil {
		cp := *existing
		p = &cp
	}
	p.Title = strings.TrimSpace(f.PageTitle)
	p.Bio = f.Bio
	p.Tagline = f.Tagline
	p.AvatarURL = f.AvatarURL
	p.CoverImageURL = f.CoverImageURL
	p.SocialTwitter = f.SocialTwitter
	p.SocialInstagram = f.SocialInstagram
	p.SocialWebsite = f.SocialWebsite
	p.Category = category.Label(f.Category)
	p.Subcategory = f.Subcategory
	p.SupportItemName = orDefault(f.SupportItemName, creatorpage.DefaultSupportItemName)
	p.SupportItemEmoji = orDefault(f.SupportItemEmoji, creatorpage.DefaultSupportItemEmoji)
	p.SupportPrice = ParseSupportPrice(f.SupportPrice)
	p.GalleryImages = make([]creatorpage.GalleryImage, len(f.GalleryImages))
	copy(p.GalleryImages, f.GalleryImages)
	return p
}

// ParseSupportPrice reads the typed price, falling back to the default for
// anything unparsable or not positive.
func ParseSupportPrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return creatorpage.DefaultSupportPrice
	}
	return v
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
