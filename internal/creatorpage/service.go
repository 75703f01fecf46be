// File: internal/creatorpage/service.go
package creatorpage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"creator_support_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines read operations on creator pages used by the explore and creator screens.
type Service interface {
	Resolve(ctx context.Context, ref string) (*CreatorPage, error)
	GetByUserID(ctx context.Context, userID string) (*CreatorPage, error)
	List(ctx context.Context, page, pageSize int) ([]CreatorPage, *common.Pagination, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new creator page service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Resolve looks a page up by handle first, then by owner user id.
func (s *service) Resolve(ctx context.Context, ref string) (*CreatorPage, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, common.ErrNotFound.WithDetails("Creator page not found.")
	}

	p, err := s.repo.FindByHandle(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error("Creator page lookup by handle failed", zap.String("ref", ref), zap.Error(err))
		return nil, fmt.Errorf("finding creator page by handle: %w", err)
	}

	p, err = s.repo.FindByUserID(ctx, ref)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound.WithDetails("Creator page not found.")
		}
		s.logger.Error("Creator page lookup by user failed", zap.String("ref", ref), zap.Error(err))
		return nil, fmt.Errorf("finding creator page by user: %w", err)
	}
	return p, nil
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*CreatorPage, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]CreatorPage, *common.Pagination, error) {
	pages, pagination, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("listing creator pages: %w", err)
	}
	return pages, pagination, nil
}
