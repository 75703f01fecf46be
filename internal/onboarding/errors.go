// File: internal/onboarding/errors.go
package onboarding

import (
	"fmt"
	"net/http"

	"creator_support_backend/internal/common"
)

var (
	ErrPageTitleRequired  = common.NewAPIError(http.StatusUnprocessableEntity, "PAGE_TITLE_REQUIRED", "A page title is required before continuing.")
	ErrUnknownCategory    = common.NewAPIError(http.StatusUnprocessableEntity, "UNKNOWN_CATEGORY", "The selected category does not exist.")
	ErrUnknownSubcategory = common.NewAPIError(http.StatusUnprocessableEntity, "UNKNOWN_SUBCATEGORY", "The selected subcategory does not belong to the current category.")
	ErrSubmitInProgress   = common.NewAPIError(http.StatusConflict, "SUBMIT_IN_PROGRESS", "The creator page is already being created.")
	ErrInvalidStep        = common.NewAPIError(http.StatusConflict, "INVALID_STEP", "This action is not available at the current onboarding step.")
)

func invalidStep(op string, step Step) error {
	return ErrInvalidStep.WithDetails(fmt.Sprintf("cannot %s from step %q", op, step))
}

// PartialWriteError reports that the profile write went through but the
// creator page write did not. Nothing is rolled back: the profile keeps
// IsCreator=true and the account has no page until a later submit succeeds.
type PartialWriteError struct {
	ProfileWritten bool
	Err            error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("profile updated but creator page was not saved: %v", e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
