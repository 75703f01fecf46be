// File: internal/category/handler.go
package category

import (
	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for category handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new category handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the public catalog routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", h.getAllCategories)
		categoryGroup.GET("/:category", h.getCategory)
	}
}

func (h *Handler) getAllCategories(c *gin.Context) {
	categories := h.service.All()
	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = ToCategoryResponse(cat)
	}
	common.RespondOK(c, "Categories retrieved successfully.", resp)
}

func (h *Handler) getCategory(c *gin.Context) {
	cat, err := MustGet(c.Param("category"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Category retrieved successfully.", ToCategoryResponse(cat))
}
