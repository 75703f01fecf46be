// File: internal/payout/wizard.go

// Package payout sequences the payout setup overlay on the dashboard:
// initial → country → method → stripe, then a hand-off to the external
// provider. Nothing here is persisted.
package payout

import (
	"fmt"
	"net/http"
	"sync"

	"creator_support_backend/internal/common"
)

// Step is a payout overlay state.
type Step string

const (
	StepInitial Step = "initial"
	StepCountry Step = "country"
	StepMethod  Step = "method"
	StepStripe  Step = "stripe"
)

var (
	ErrInvalidStep        = common.NewAPIError(http.StatusConflict, "INVALID_STEP", "This action is not available at the current payout step.")
	ErrCountryRequired    = common.NewAPIError(http.StatusUnprocessableEntity, "COUNTRY_REQUIRED", "Select a country before continuing.")
	ErrUnsupportedCountry = common.NewAPIError(http.StatusUnprocessableEntity, "UNSUPPORTED_COUNTRY", "Payouts are not available in the selected country.")
)

// State is a point-in-time view of the overlay.
type State struct {
	Step            Step   `json:"step"`
	SelectedCountry string `json:"selected_country"`
}

// Wizard is one account's payout overlay. It is safe for concurrent use.
type Wizard struct {
	mu          sync.Mutex
	step        Step
	country     string
	providerURL string
}

// NewWizard starts closed. providerURL is where HandOff sends the user.
func NewWizard(providerURL string) *Wizard {
	return &Wizard{step: StepInitial, providerURL: providerURL}
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{Step: w.step, SelectedCountry: w.country}
}

// Begin opens the country picker.
func (w *Wizard) Begin() error {
	return w.move("begin", StepInitial, StepCountry)
}

// SelectCountry records the choice on the country step.
func (w *Wizard) SelectCountry(name string) error {
	if !IsSupported(name) {
		return ErrUnsupportedCountry
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepCountry {
		return invalidStep("select country", w.step)
	}
	w.country = name
	return nil
}

// Next leaves the country step once a country is chosen.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepCountry {
		return invalidStep("next", w.step)
	}
	if w.country == "" {
		return ErrCountryRequired
	}
	w.step = StepMethod
	return nil
}

// Continue leaves the informational method step.
func (w *Wizard) Continue() error {
	return w.move("continue", StepMethod, StepStripe)
}

// Back steps one state toward initial.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepCountry:
		w.step = StepInitial
	case StepMethod:
		w.step = StepCountry
	case StepStripe:
		w.step = StepMethod
	default:
		return invalidStep("back", w.step)
	}
	return nil
}

// HandOff finishes the flow: it returns the provider URL and resets to initial.
func (w *Wizard) HandOff() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepStripe {
		return "", invalidStep("hand off", w.step)
	}
	w.step = StepInitial
	return w.providerURL, nil
}

// Close dismisses the overlay from any step.
func (w *Wizard) Close() {
	w.mu.Lock()
	w.step = StepInitial
	w.mu.Unlock()
}

func (w *Wizard) move(op string, from, to Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != from {
		return invalidStep(op, w.step)
	}
	w.step = to
	return nil
}

func invalidStep(op string, step Step) error {
	return ErrInvalidStep.WithDetails(fmt.Sprintf("cannot %s from step %q", op, step))
}
