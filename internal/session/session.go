// File: internal/session/session.go

// Package session carries the signed-in identity and its profile through a
// request. A Session is built by the auth middleware and passed explicitly to
// the code that needs it.
package session

import (
	"context"
	"fmt"
	"sync"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/profile"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated account as reported by the identity provider.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ProfileFinder loads the profile of an account, (nil, nil) when it has none.
type ProfileFinder interface {
	FindProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error)
}

// Session holds the current identity and the associated profile record.
type Session struct {
	mu      sync.RWMutex
	user    *Identity
	profile *profile.Profile
	finder  ProfileFinder
}

// New creates a session for user. Call RefreshProfile to load the profile.
func New(user *Identity, finder ProfileFinder) *Session {
	return &Session{user: user, finder: finder}
}

// CurrentUser returns the signed-in identity, nil when anonymous.
func (s *Session) CurrentUser() *Identity {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// CurrentProfile returns the last loaded profile, nil when there is none.
func (s *Session) CurrentProfile() *profile.Profile {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UserID is a shortcut for CurrentUser().UserID; "" when anonymous.
func (s *Session) UserID() string {
	if u := s.CurrentUser(); u != nil {
		return u.UserID
	}
	return ""
}

// RefreshProfile reloads the profile from the store.
func (s *Session) RefreshProfile(ctx context.Context) error {
	user := s.CurrentUser()
	if user == nil {
		return common.ErrUnauthorized.WithDetails("No signed-in user.")
	}
	p, err := s.finder.FindProfileByUserID(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("refreshing profile: %w", err)
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// FromGin returns the session stored by the auth middleware, nil if absent.
func FromGin(c *gin.Context) *Session {
	v, exists := c.Get(common.SessionKey)
	if !exists {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// SetGin stores s on the gin context together with its user id.
func SetGin(c *gin.Context, s *Session) {
	c.Set(common.SessionKey, s)
	c.Set(common.UserIDKey, s.UserID())
}
