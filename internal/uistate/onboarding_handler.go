// File: internal/uistate/onboarding_handler.go
package uistate

import (
	"context"
	"errors"
	"net/http"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/navigation"
	"creator_support_backend/internal/onboarding"
	"creator_support_backend/internal/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrPartialWrite is returned when the profile was saved but the page was not.
var ErrPartialWrite = common.NewAPIError(http.StatusInternalServerError, "PARTIAL_WRITE", "Your profile was updated but the creator page could not be saved. Please submit again.")

// BasicInfoRequest carries the free-text fields of the basic-info form.
type BasicInfoRequest struct {
	PageTitle        string                     `json:"page_title" binding:"max=255"`
	Bio              string                     `json:"bio"`
	Tagline          string                     `json:"tagline" binding:"max=255"`
	AvatarURL        string                     `json:"avatar_url"`
	CoverImageURL    string                     `json:"cover_image_url"`
	SocialTwitter    string                     `json:"social_twitter"`
	SocialInstagram  string                     `json:"social_instagram"`
	SocialWebsite    string                     `json:"social_website"`
	SupportItemName  string                     `json:"support_item_name" binding:"max=100"`
	SupportItemEmoji string                     `json:"support_item_emoji" binding:"max=16"`
	SupportPrice     string                     `json:"support_price"`
	GalleryImages    []creatorpage.GalleryImage `json:"gallery_images"`
}

func (r BasicInfoRequest) details() onboarding.Details {
	return onboarding.Details{
		PageTitle:        r.PageTitle,
		Bio:              r.Bio,
		Tagline:          r.Tagline,
		AvatarURL:        r.AvatarURL,
		CoverImageURL:    r.CoverImageURL,
		SocialTwitter:    r.SocialTwitter,
		SocialInstagram:  r.SocialInstagram,
		SocialWebsite:    r.SocialWebsite,
		SupportItemName:  r.SupportItemName,
		SupportItemEmoji: r.SupportItemEmoji,
		SupportPrice:     r.SupportPrice,
		GalleryImages:    r.GalleryImages,
	}
}

type categoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type subcategoryRequest struct {
	Subcategory string `json:"subcategory" binding:"required"`
}

// OnboardingResponse is the wizard state plus the page the account is on.
type OnboardingResponse struct {
	Onboarding onboarding.State    `json:"onboarding"`
	Navigation navigation.Envelope `json:"navigation"`
}

// SubmitResponse describes a completed onboarding.
type SubmitResponse struct {
	Profile      *profile.ProfileResponse         `json:"profile"`
	Page         *creatorpage.CreatorPageResponse `json:"page"`
	Handle       string                           `json:"handle"`
	HandleSource string                           `json:"handle_source"`
	Onboarding   onboarding.State                 `json:"onboarding"`
	Navigation   navigation.Envelope              `json:"navigation"`
}

func (h *Handler) respondOnboarding(c *gin.Context, e *Entry, message string) {
	common.RespondOK(c, message, OnboardingResponse{
		Onboarding: e.Onboarding.State(),
		Navigation: navigation.Envelope{Page: e.Router.Current()},
	})
}

func (h *Handler) getOnboarding(c *gin.Context) {
	e, sess, ok := h.entry(c)
	if !ok {
		return
	}
	if _, err := h.onboarding.Prepare(c.Request.Context(), sess, e.Onboarding); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.respondOnboarding(c, e, "Onboarding state retrieved successfully.")
}

func (h *Handler) confirmOnboarding(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	if err := e.Onboarding.Confirm(); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.respondOnboarding(c, e, "Onboarding started.")
}

func (h *Handler) backOnboarding(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	exited, err := e.Onboarding.Back()
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if exited {
		e.Router.Home()
	}
	h.respondOnboarding(c, e, "Moved back.")
}

func (h *Handler) updateBasicInfo(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req BasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Update basic info: Invalid request body", zap.Error(err), zap.String("userID", c.GetString(common.UserIDKey)))
		respondBindError(c, err)
		return
	}
	if err := e.Onboarding.UpdateDetails(req.details()); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.respondOnboarding(c, e, "Basic info updated.")
}

func (h *Handler) selectCategory(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := e.Onboarding.SelectCategory(req.Category); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.respondOnboarding(c, e, "Category selected.")
}

func (h *Handler) selectSubcategory(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := e.Onboarding.SelectSubcategory(req.Subcategory); err != nil {
		common.RespondWithError(c, err)
		return
	}
	h.respondOnboarding(c, e, "Subcategory selected.")
}

func (h *Handler) submitOnboarding(c *gin.Context) {
	e, sess, ok := h.entry(c)
	if !ok {
		return
	}
	// A client that hangs up does not abort writes already under way.
	result, err := h.onboarding.Submit(context.WithoutCancel(c.Request.Context()), sess, e.Onboarding)
	if err != nil {
		var partial *onboarding.PartialWriteError
		if errors.As(err, &partial) {
			common.RespondWithError(c, ErrPartialWrite.WithDetails(gin.H{"profile_written": partial.ProfileWritten}))
			return
		}
		common.RespondWithError(c, err)
		return
	}

	current := e.Router.Dashboard()
	common.RespondCreated(c, "Creator page saved successfully.", SubmitResponse{
		Profile:      profile.ToProfileResponse(result.Profile),
		Page:         creatorpage.ToCreatorPageResponse(result.Page),
		Handle:       result.Handle,
		HandleSource: result.HandleSource.String(),
		Onboarding:   e.Onboarding.State(),
		Navigation:   navigation.Envelope{Page: current},
	})
}
