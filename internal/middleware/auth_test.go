// File: internal/middleware/auth_test.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeVerifier map[string]*session.Identity

func (f fakeVerifier) Verify(_ context.Context, token string) (*session.Identity, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return nil, errors.New("bad token")
}

type fakeProfiles struct {
	profiles map[string]*profile.Profile
	err      error
}

func (f fakeProfiles) FindProfileByUserID(_ context.Context, userID string) (*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func setupAuthTest(profiles fakeProfiles) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	verifier := fakeVerifier{"good": {UserID: "u1", Email: "u1@example.com"}}
	r.GET("/me", AuthMiddleware(verifier, profiles, zap.NewNop()), func(c *gin.Context) {
		sess := session.FromGin(c)
		name := ""
		if p := sess.CurrentProfile(); p != nil {
			name = p.DisplayName
		}
		c.String(http.StatusOK, sess.UserID()+":"+name)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	profiles := fakeProfiles{profiles: map[string]*profile.Profile{"u1": {UserID: "u1", DisplayName: "Maria"}}}

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "ok", header: "Bearer good", status: http.StatusOK, body: "u1:Maria"},
		{name: "scheme is case insensitive", header: "bearer good", status: http.StatusOK, body: "u1:Maria"},
	}
	r := setupAuthTest(profiles)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ProfileLoadFailure(t *testing.T) {
	r := setupAuthTest(fakeProfiles{err: errors.New("db down")})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
