// File: internal/profile/service.go
package profile

import (
	"context"
	"fmt"

	"creator_support_backend/internal/category"
	"creator_support_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines read operations on profiles exposed over HTTP.
type Service interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	ListCreatorsInCategory(ctx context.Context, categoryKey, subcategory string, page, pageSize int) ([]Profile, *common.Pagination, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new profile service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) ListCreatorsInCategory(ctx context.Context, categoryKey, subcategory string, page, pageSize int) ([]Profile, *common.Pagination, error) {
	cat, err := category.MustGet(categoryKey)
	if err != nil {
		return nil, nil, err
	}
	if subcategory != "" && !cat.HasSubcategory(subcategory) {
		return nil, nil, common.ErrBadRequest.WithDetails(fmt.Sprintf("Subcategory %q does not belong to %s.", subcategory, cat.Label))
	}

	profiles, pagination, err := s.repo.ListCreators(ctx, CreatorQuery{
		Category:    cat.Key,
		Subcategory: subcategory,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		s.logger.Error("Failed to list creators by category", zap.String("category", cat.Key), zap.Error(err))
		return nil, nil, fmt.Errorf("listing creators: %w", err)
	}
	return profiles, pagination, nil
}
