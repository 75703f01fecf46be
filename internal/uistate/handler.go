// File: internal/uistate/handler.go
package uistate

import (
	"context"
	"errors"

	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/common"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/firebase"
	"creator_support_backend/internal/navigation"
	"creator_support_backend/internal/onboarding"
	"creator_support_backend/internal/payout"
	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PageResolver finds a creator page by handle or account id.
type PageResolver interface {
	Resolve(ctx context.Context, ref string) (*creatorpage.CreatorPage, error)
}

// CauseLister lists the causes an account owns.
type CauseLister interface {
	ListMine(ctx context.Context, creatorID string) ([]cause.Cause, error)
}

// Handler exposes the per-account screen state over HTTP. Every route
// requires a signed-in session.
type Handler struct {
	store      *Store
	onboarding *onboarding.Service
	pages      PageResolver
	causes     CauseLister
	auth       firebase.Authenticator
	logger     *zap.Logger
}

// NewHandler creates a new UI state handler.
func NewHandler(store *Store, onboardingService *onboarding.Service, pages creatorpage.Service, causes cause.Service, auth firebase.Authenticator, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		onboarding: onboardingService,
		pages:      pages,
		causes:     causes,
		auth:       auth,
		logger:     logger,
	}
}

// MeResponse is the signed-in identity and its profile, if one exists.
type MeResponse struct {
	User    *session.Identity        `json:"user"`
	Profile *profile.ProfileResponse `json:"profile"`
}

type creatorTabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=home membership posts shop"`
}

// RegisterRoutes sets up the authenticated screen-state routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	me := router.Group("/me")
	me.Use(authMW)
	{
		me.GET("", h.getMe)
		me.POST("/sign-out", h.signOut)
	}

	nav := router.Group("/navigation")
	nav.Use(authMW)
	{
		nav.GET("", h.getNavigation)
		nav.POST("", h.navigate)
		nav.POST("/creator-tab", h.switchCreatorTab)
	}

	ob := router.Group("/onboarding")
	ob.Use(authMW)
	{
		ob.GET("", h.getOnboarding)
		ob.POST("/confirm", h.confirmOnboarding)
		ob.POST("/back", h.backOnboarding)
		ob.PUT("/basic-info", h.updateBasicInfo)
		ob.POST("/category", h.selectCategory)
		ob.POST("/subcategory", h.selectSubcategory)
		ob.POST("/submit", h.submitOnboarding)
	}

	po := router.Group("/payout")
	po.Use(authMW)
	{
		po.GET("", h.getPayout)
		po.GET("/countries", h.listPayoutCountries)
		po.POST("/begin", h.payoutStep((*payout.Wizard).Begin))
		po.POST("/country", h.selectPayoutCountry)
		po.POST("/next", h.payoutStep((*payout.Wizard).Next))
		po.POST("/back", h.payoutStep((*payout.Wizard).Back))
		po.POST("/continue", h.payoutStep((*payout.Wizard).Continue))
		po.POST("/handoff", h.handOffPayout)
		po.POST("/close", h.closePayout)
	}

	router.GET("/dashboard", authMW, h.getDashboard)
}

func (h *Handler) entry(c *gin.Context) (*Entry, *session.Session, bool) {
	sess := session.FromGin(c)
	if sess == nil || sess.CurrentUser() == nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("No signed-in user."))
		return nil, nil, false
	}
	return h.store.Get(sess.UserID()), sess, true
}

func (h *Handler) getMe(c *gin.Context) {
	sess := session.FromGin(c)
	if sess == nil || sess.CurrentUser() == nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("No signed-in user."))
		return
	}
	common.RespondOK(c, "Current user retrieved successfully.", MeResponse{
		User:    sess.CurrentUser(),
		Profile: profile.ToProfileResponse(sess.CurrentProfile()),
	})
}

func (h *Handler) signOut(c *gin.Context) {
	userID := c.GetString(common.UserIDKey)
	if err := h.auth.SignOut(c.Request.Context(), userID); err != nil {
		h.logger.Error("Sign-out failed", zap.String("userID", userID), zap.Error(err))
		common.RespondWithError(c, err)
		return
	}
	h.store.Drop(userID)
	h.logger.Info("User signed out", zap.String("userID", userID))
	common.RespondNoContent(c)
}

func (h *Handler) getNavigation(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	common.RespondOK(c, "Current page retrieved successfully.", navigation.Envelope{Page: e.Router.Current()})
}

func (h *Handler) navigate(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req navigation.Envelope
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	current := e.Router.Go(req.Page)
	h.logger.Debug("Navigated", zap.String("userID", c.GetString(common.UserIDKey)), zap.Stringer("page", current.Kind()))
	common.RespondOK(c, "Navigated successfully.", navigation.Envelope{Page: current})
}

func (h *Handler) switchCreatorTab(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req creatorTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	current := e.Router.Current()
	ref, scoped := navigation.RefOf(current)
	if !scoped {
		creator, isCreator := current.(navigation.Creator)
		if !isCreator {
			common.RespondWithError(c, common.ErrConflict.WithDetails("The current page is not a creator page."))
			return
		}
		page, err := h.pages.Resolve(c.Request.Context(), creator.CreatorID)
		if err != nil {
			common.RespondWithError(c, err)
			return
		}
		ref = navigation.CreatorRef{
			ID:     creator.CreatorID,
			Name:   page.Title,
			Avatar: page.AvatarURL,
			PageID: page.ID.String(),
		}
	}

	next, err := e.Router.SwitchTab(navigation.Tab(req.Tab), ref)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Navigated successfully.", navigation.Envelope{Page: next})
}

// DashboardResponse is everything the dashboard screen shows.
type DashboardResponse struct {
	Page       *creatorpage.CreatorPageResponse `json:"page"`
	Causes     []cause.CauseResponse            `json:"causes"`
	Onboarding onboarding.State                 `json:"onboarding"`
	Payout     payout.State                     `json:"payout"`
}

func (h *Handler) getDashboard(c *gin.Context) {
	e, sess, ok := h.entry(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	page, err := h.onboarding.Prepare(ctx, sess, e.Onboarding)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	causes, err := h.causes.ListMine(ctx, sess.UserID())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Dashboard retrieved successfully.", DashboardResponse{
		Page:       creatorpage.ToCreatorPageResponse(page),
		Causes:     cause.ToCauseResponses(causes),
		Onboarding: e.Onboarding.State(),
		Payout:     e.Payout.State(),
	})
}

func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
		return
	}
	common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
}
