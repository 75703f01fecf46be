// File: internal/firebase/service_test.go
package firebase

import (
	"context"
	"errors"
	"testing"

	"creator_support_backend/internal/config"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("maps uid and email", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("VerifyIDToken", ctx, "good").Return(&auth.Token{
			UID:    "fb-uid",
			Claims: map[string]interface{}{"email": "maria@example.com"},
		}, nil).Once()

		id, err := NewWithClient(client, zap.NewNop()).Verify(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, "fb-uid", id.UserID)
		assert.Equal(t, "maria@example.com", id.Email)
	})

	t.Run("empty token rejected locally", func(t *testing.T) {
		client := new(MockAuthClient)
		_, err := NewWithClient(client, zap.NewNop()).Verify(ctx, "")
		assert.Error(t, err)
		client.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
	})

	t.Run("verification failure", func(t *testing.T) {
		client := new(MockAuthClient)
		client.On("VerifyIDToken", ctx, "bad").Return(nil, errors.New("expired")).Once()
		_, err := NewWithClient(client, zap.NewNop()).Verify(ctx, "bad")
		assert.ErrorContains(t, err, "expired")
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	client := new(MockAuthClient)
	client.On("RevokeRefreshTokens", ctx, "fb-uid").Return(nil).Once()

	require.NoError(t, NewWithClient(client, zap.NewNop()).SignOut(ctx, "fb-uid"))
	client.AssertExpectations(t)
}

func TestNewAuthenticator_LocalOutsideRelease(t *testing.T) {
	a, err := NewAuthenticator(&config.Config{GinMode: "debug"}, zap.NewNop())
	require.NoError(t, err)

	id, err := a.Verify(context.Background(), "u1|maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "maria@example.com", id.Email)

	_, err = a.Verify(context.Background(), " ")
	assert.Error(t, err)

	_, err = NewAuthenticator(&config.Config{GinMode: "release"}, zap.NewNop())
	assert.Error(t, err)
}
