// File: internal/creatorpage/repository_test.go
package creatorpage

import (
	"context"
	"errors"
	"testing"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/platform/database/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepositoryTest(t *testing.T) Repository {
	t.Helper()
	db := sqlitetest.Open(t)
	return NewGORMRepository(db)
}

func newPage(userID, handle string) *CreatorPage {
	return &CreatorPage{
		UserID:           userID,
		Handle:           handle,
		Title:            "Page of " + userID,
		SupportItemName:  DefaultSupportItemName,
		SupportItemEmoji: DefaultSupportItemEmoji,
		SupportPrice:     DefaultSupportPrice,
	}
}

func TestRepository_CreateFindAndConflict(t *testing.T) {
	repo := setupRepositoryTest(t)
	ctx := context.Background()

	p := newPage("u1", "maria")
	p.GalleryImages = []GalleryImage{{URL: "https://img/1.png", Caption: "first"}, {URL: "https://img/2.png"}}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindByHandle(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	require.Len(t, got.GalleryImages, 2)
	assert.Equal(t, "first", got.GalleryImages[0].Caption)

	err = repo.Create(ctx, newPage("u2", "maria"))
	assert.True(t, errors.Is(err, common.ErrConflict))

	_, err = repo.FindByUserID(ctx, "u2")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRepository_UpdateKeepsHandleAndCounters(t *testing.T) {
	repo := setupRepositoryTest(t)
	ctx := context.Background()

	p := newPage("u1", "maria")
	p.SupportersCount = 7
	p.TotalRaised = 42
	require.NoError(t, repo.Create(ctx, p))

	edit := *p
	edit.Title = "New title"
	edit.Handle = "hijacked"
	edit.SupportersCount = 0
	edit.TotalRaised = 0
	require.NoError(t, repo.Update(ctx, &edit))

	got, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "maria", got.Handle)
	assert.Equal(t, 7, got.SupportersCount)
	assert.Equal(t, 42.0, got.TotalRaised)
}

func TestRepository_FindInBatches(t *testing.T) {
	repo := setupRepositoryTest(t)
	ctx := context.Background()
	for i, h := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, newPage(h+"-owner", h)), i)
	}

	seen := 0
	batches := 0
	err := repo.FindInBatches(ctx, 2, func(batch []CreatorPage) error {
		batches++
		seen += len(batch)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
	assert.Equal(t, 3, batches)

	list, pagination, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 3, pagination.TotalPages)
}
