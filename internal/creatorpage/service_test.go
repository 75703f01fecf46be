// File: internal/creatorpage/service_test.go
package creatorpage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock type for creatorpage.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *CreatorPage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, p *CreatorPage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID string) (*CreatorPage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreatorPage), args.Error(1)
}

func (m *MockRepository) FindByHandle(ctx context.Context, handle string) (*CreatorPage, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreatorPage), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, page, pageSize int) ([]CreatorPage, *common.Pagination, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]CreatorPage), args.Get(1).(*common.Pagination), args.Error(2)
}

func (m *MockRepository) FindInBatches(ctx context.Context, batchSize int, fn func(batch []CreatorPage) error) error {
	args := m.Called(ctx, batchSize, fn)
	return args.Error(0)
}

type stubCauses struct {
	causes []cause.Cause
	err    error
}

func (s stubCauses) ListActive(ctx context.Context, creatorID string) ([]cause.Cause, error) {
	return s.causes, s.err
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	notFound := common.ErrNotFound.WithDetails("missing")

	t.Run("handle wins", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByHandle", ctx, "maria").Return(&CreatorPage{Handle: "maria"}, nil).Once()
		p, err := NewService(repo, zap.NewNop()).Resolve(ctx, "maria")
		require.NoError(t, err)
		assert.Equal(t, "maria", p.Handle)
		repo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})

	t.Run("falls back to user id", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByHandle", ctx, "uid-9").Return(nil, notFound).Once()
		repo.On("FindByUserID", ctx, "uid-9").Return(&CreatorPage{UserID: "uid-9", Handle: "h"}, nil).Once()
		p, err := NewService(repo, zap.NewNop()).Resolve(ctx, "uid-9")
		require.NoError(t, err)
		assert.Equal(t, "h", p.Handle)
	})

	t.Run("neither matches", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByHandle", ctx, "ghost").Return(nil, notFound).Once()
		repo.On("FindByUserID", ctx, "ghost").Return(nil, notFound).Once()
		_, err := NewService(repo, zap.NewNop()).Resolve(ctx, "ghost")
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("read failure is not treated as absence", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByHandle", ctx, "maria").Return(nil, errors.New("connection reset")).Once()
		_, err := NewService(repo, zap.NewNop()).Resolve(ctx, "maria")
		require.Error(t, err)
		assert.False(t, errors.Is(err, common.ErrNotFound))
		repo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func TestHandler_GetCreator_IncludesActiveCauses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := new(MockRepository)
	repo.On("FindByHandle", mock.Anything, "maria").Return(&CreatorPage{UserID: "u1", Handle: "maria", Title: "Maria"}, nil).Once()

	h := &Handler{
		service: NewService(repo, zap.NewNop()),
		causes:  stubCauses{causes: []cause.Cause{{Title: "Shelter roof", Status: cause.StatusActive}}},
		logger:  zap.NewNop(),
	}
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/creators/maria", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"handle":"maria"`)
	assert.Contains(t, w.Body.String(), "Shelter roof")
}
