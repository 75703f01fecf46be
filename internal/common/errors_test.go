// File: internal/common/errors_test.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	detailed := ErrNotFound.WithDetails("Creator page not found.")

	assert.Nil(t, ErrNotFound.Details)
	assert.Equal(t, "Creator page not found.", detailed.Details)
	assert.True(t, errors.Is(detailed, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", detailed), ErrNotFound))
	assert.False(t, errors.Is(detailed, ErrConflict))
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("api error keeps status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondWithError(c, ErrConflict.WithDetails("taken"))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondWithError(c, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "boom")
	})
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 12)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 12, Offset(2, 12))
}
