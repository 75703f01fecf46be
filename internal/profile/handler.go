// File: internal/profile/handler.go
package profile

import (
	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for profile handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new profile handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the public category-browsing route.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories/:category/creators", h.listCreatorsInCategory)
}

func (h *Handler) listCreatorsInCategory(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	profiles, pagination, err := h.service.ListCreatorsInCategory(
		c.Request.Context(), c.Param("category"), c.Query("subcategory"), page, pageSize,
	)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	resp := make([]*ProfileResponse, len(profiles))
	for i := range profiles {
		resp[i] = ToProfileResponse(&profiles[i])
	}
	common.RespondPaginated(c, "Creators retrieved successfully.", resp, pagination)
}
