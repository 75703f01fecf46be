// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// UserIDKey is the gin context key for the authenticated account id
	UserIDKey = "userID"
	// SessionKey is the gin context key for the *session.Session built by the auth middleware
	SessionKey = "session"
	// LoggerKey is the gin context key for a request-scoped *zap.Logger
	LoggerKey = "logger"
)
