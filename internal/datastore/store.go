// File: internal/datastore/store.go

// Package datastore is the record-level read/write surface the onboarding flow
// and handle allocator run against. Lookups return (nil, nil) for absence and an
// error only when the backing store itself failed.
package datastore

import (
	"context"
	"errors"
	"fmt"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/profile"

	"go.uber.org/zap"
)

// Store is the data access surface over profiles and creator_pages.
type Store interface {
	FindProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error)
	FindProfileByHandle(ctx context.Context, handle string) (*profile.Profile, error)
	FindCreatorPageByUserID(ctx context.Context, userID string) (*creatorpage.CreatorPage, error)
	FindCreatorPageByHandle(ctx context.Context, handle string) (*creatorpage.CreatorPage, error)
	InsertProfile(ctx context.Context, p *profile.Profile) error
	UpdateProfile(ctx context.Context, p *profile.Profile) error
	InsertCreatorPage(ctx context.Context, p *creatorpage.CreatorPage) error
	UpdateCreatorPage(ctx context.Context, p *creatorpage.CreatorPage) error
}

type repoStore struct {
	profiles profile.Repository
	pages    creatorpage.Repository
	logger   *zap.Logger
}

// NewStore builds a Store over the GORM repositories.
func NewStore(profiles profile.Repository, pages creatorpage.Repository, logger *zap.Logger) Store {
	return &repoStore{profiles: profiles, pages: pages, logger: logger.Named("datastore")}
}

func (s *repoStore) FindProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	return absentIfNotFound(p, s.readErr(err, "profiles", "user_id", userID))
}

func (s *repoStore) FindProfileByHandle(ctx context.Context, handle string) (*profile.Profile, error) {
	p, err := s.profiles.FindByHandle(ctx, handle)
	return absentIfNotFound(p, s.readErr(err, "profiles", "handle", handle))
}

func (s *repoStore) FindCreatorPageByUserID(ctx context.Context, userID string) (*creatorpage.CreatorPage, error) {
	p, err := s.pages.FindByUserID(ctx, userID)
	return absentIfNotFound(p, s.readErr(err, "creator_pages", "user_id", userID))
}

func (s *repoStore) FindCreatorPageByHandle(ctx context.Context, handle string) (*creatorpage.CreatorPage, error) {
	p, err := s.pages.FindByHandle(ctx, handle)
	return absentIfNotFound(p, s.readErr(err, "creator_pages", "handle", handle))
}

func (s *repoStore) InsertProfile(ctx context.Context, p *profile.Profile) error {
	return s.writeErr(s.profiles.Create(ctx, p), "insert", "profiles", p.UserID)
}

func (s *repoStore) UpdateProfile(ctx context.Context, p *profile.Profile) error {
	return s.writeErr(s.profiles.Update(ctx, p), "update", "profiles", p.UserID)
}

func (s *repoStore) InsertCreatorPage(ctx context.Context, p *creatorpage.CreatorPage) error {
	return s.writeErr(s.pages.Create(ctx, p), "insert", "creator_pages", p.UserID)
}

func (s *repoStore) UpdateCreatorPage(ctx context.Context, p *creatorpage.CreatorPage) error {
	return s.writeErr(s.pages.Update(ctx, p), "update", "creator_pages", p.UserID)
}

func (s *repoStore) readErr(err error, collection, field, value string) error {
	if err == nil || errors.Is(err, common.ErrNotFound) {
		return err
	}
	s.logger.Error("Record lookup failed",
		zap.String("collection", collection), zap.String("field", field), zap.String("value", value), zap.Error(err))
	return fmt.Errorf("reading %s by %s: %w", collection, field, err)
}

func (s *repoStore) writeErr(err error, op, collection, userID string) error {
	if err == nil {
		return nil
	}
	s.logger.Error("Record write failed",
		zap.String("op", op), zap.String("collection", collection), zap.String("userID", userID), zap.Error(err))
	return fmt.Errorf("%s %s: %w", op, collection, err)
}

func absentIfNotFound[T any](rec *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
