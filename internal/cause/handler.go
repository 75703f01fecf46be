// File: internal/cause/handler.go
package cause

import (
	"errors"

	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for cause handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new cause handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the authenticated cause routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	causeGroup := router.Group("/causes")
	causeGroup.Use(authMW)
	{
		causeGroup.POST("", h.createCause)
		causeGroup.GET("/mine", h.listMyCauses)
		causeGroup.DELETE("/:id", h.deleteCause)
	}
}

func (h *Handler) createCause(c *gin.Context) {
	userID := c.GetString(common.UserIDKey)
	var req CreateCauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create cause: Invalid request body", zap.Error(err), zap.String("userID", userID))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Cause created successfully.", ToCauseResponse(created))
}

func (h *Handler) listMyCauses(c *gin.Context) {
	causes, err := h.service.ListMine(c.Request.Context(), c.GetString(common.UserIDKey))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Causes retrieved successfully.", ToCauseResponses(causes))
}

func (h *Handler) deleteCause(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid cause ID format."))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, c.GetString(common.UserIDKey)); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
