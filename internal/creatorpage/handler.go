// File: internal/creatorpage/handler.go
package creatorpage

import (
	"context"

	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActiveCauseLister is the slice of cause.Service the profile screen needs.
type ActiveCauseLister interface {
	ListActive(ctx context.Context, creatorID string) ([]cause.Cause, error)
}

// Handler struct holds dependencies for creator page handlers.
type Handler struct {
	service Service
	causes  ActiveCauseLister
	logger  *zap.Logger
}

// NewHandler creates a new creator page handler.
func NewHandler(service Service, causes cause.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, causes: causes, logger: logger}
}

// CreatorDetailResponse is a page together with its active causes.
type CreatorDetailResponse struct {
	Page   *CreatorPageResponse  `json:"page"`
	Causes []cause.CauseResponse `json:"causes"`
}

// RegisterRoutes sets up the public creator routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	creatorGroup := router.Group("/creators")
	{
		creatorGroup.GET("", h.listCreators)
		creatorGroup.GET("/:ref", h.getCreator)
	}
}

func (h *Handler) listCreators(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	pages, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	resp := make([]*CreatorPageResponse, len(pages))
	for i := range pages {
		resp[i] = ToCreatorPageResponse(&pages[i])
	}
	common.RespondPaginated(c, "Creator pages retrieved successfully.", resp, pagination)
}

func (h *Handler) getCreator(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.service.Resolve(ctx, c.Param("ref"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	causes, err := h.causes.ListActive(ctx, p.UserID)
	if err != nil {
		h.logger.Error("Failed to load causes for creator page", zap.String("pageID", p.ID.String()), zap.Error(err))
		common.RespondWithError(c, err)
		return
	}

	common.RespondOK(c, "Creator page retrieved successfully.", CreatorDetailResponse{
		Page:   ToCreatorPageResponse(p),
		Causes: cause.ToCauseResponses(causes),
	})
}
