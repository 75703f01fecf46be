// File: internal/cause/service.go
package cause

import (
	"context"
	"fmt"
	"strings"

	"creator_support_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines cause operations.
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateCauseRequest) (*Cause, error)
	ListMine(ctx context.Context, creatorID string) ([]Cause, error)
	ListActive(ctx context.Context, creatorID string) ([]Cause, error)
	Delete(ctx context.Context, id uuid.UUID, creatorID string) error
	MarkFunded(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new cause service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateCauseRequest) (*Cause, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, common.NewValidationAPIError(map[string]string{"Title": "The title field is required."})
	}
	if req.TargetAmount < 0 {
		return nil, common.NewValidationAPIError(map[string]string{"TargetAmount": "The target_amount field must be greater than or equal to 0."})
	}

	c := &Cause{
		CreatorID:     creatorID,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		ImageURL:      strings.TrimSpace(req.ImageURL),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		Category:      strings.TrimSpace(req.Category),
		Status:        StatusActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to create cause", zap.String("creatorID", creatorID), zap.Error(err))
		return nil, fmt.Errorf("creating cause: %w", err)
	}
	s.logger.Info("Cause created", zap.String("causeID", c.ID.String()), zap.String("creatorID", creatorID))
	return c, nil
}

func (s *service) ListMine(ctx context.Context, creatorID string) ([]Cause, error) {
	causes, err := s.repo.ListByCreator(ctx, creatorID, nil)
	if err != nil {
		return nil, fmt.Errorf("listing causes: %w", err)
	}
	return causes, nil
}

func (s *service) ListActive(ctx context.Context, creatorID string) ([]Cause, error) {
	active := StatusActive
	causes, err := s.repo.ListByCreator(ctx, creatorID, &active)
	if err != nil {
		return nil, fmt.Errorf("listing active causes: %w", err)
	}
	return causes, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, creatorID string) error {
	if err := s.repo.Delete(ctx, id, creatorID); err != nil {
		s.logger.Warn("Failed to delete cause", zap.String("causeID", id.String()), zap.String("creatorID", creatorID), zap.Error(err))
		return err
	}
	return nil
}

// MarkFunded is run by the scheduler; it returns how many causes changed status.
func (s *service) MarkFunded(ctx context.Context) (int, error) {
	n, err := s.repo.MarkFundedCauses(ctx)
	if err != nil {
		return 0, fmt.Errorf("marking funded causes: %w", err)
	}
	return int(n), nil
}
