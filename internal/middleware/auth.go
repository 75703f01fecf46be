// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"strings"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier turns a bearer token into an identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*session.Identity, error)
}

// AuthMiddleware verifies the bearer token, loads the caller's profile and
// stores a *session.Session on the context.
func AuthMiddleware(verifier TokenVerifier, profiles session.ProfileFinder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(common.AuthorizationHeader)
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], common.AuthorizationTypeBearer) {
			logger.Debug("Authorization header format invalid")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired token."))
			return
		}

		sess := session.New(identity, profiles)
		if err := sess.RefreshProfile(c.Request.Context()); err != nil {
			logger.Error("Failed to load profile for session", zap.String("userID", identity.UserID), zap.Error(err))
			common.RespondWithError(c, err)
			return
		}
		session.SetGin(c, sess)

		logger.Debug("User authenticated successfully", zap.String("userID", identity.UserID))
		c.Next()
	}
}
