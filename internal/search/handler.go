// File: internal/search/handler.go
package search

import (
	"strings"

	"creator_support_backend/internal/category"
	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for search handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new search handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the public search route.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search", h.searchCreators)
}

func (h *Handler) searchCreators(c *gin.Context) {
	text := strings.TrimSpace(c.Query("q"))
	if text == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Query parameter 'q' is required."))
		return
	}

	q := Query{Text: text}
	if key := c.Query("category"); key != "" {
		cat, ok := category.Lookup(key)
		if !ok {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Unknown category."))
			return
		}
		q.Category = cat.Label
	}
	q.Page, q.PageSize = common.GetPaginationParams(c)

	hits, pagination, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondPaginated(c, "Creators retrieved successfully.", hits, pagination)
}
