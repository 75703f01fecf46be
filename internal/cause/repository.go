// File: internal/cause/repository.go
package cause

import (
	"context"
	"errors"

	"creator_support_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for cause data operations.
type Repository interface {
	Create(ctx context.Context, c *Cause) error
	FindByID(ctx context.Context, id uuid.UUID) (*Cause, error)
	Delete(ctx context.Context, id uuid.UUID, creatorID string) error
	ListByCreator(ctx context.Context, creatorID string, status *Status) ([]Cause, error)
	MarkFundedCauses(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM cause repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, c *Cause) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Cause, error) {
	var c Cause
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Cause not found.")
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a cause owned by creatorID. A cause owned by someone else reads as missing.
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID, creatorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&Cause{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Cause not found or you do not have permission to delete it.")
	}
	return nil
}

func (r *gormRepository) ListByCreator(ctx context.Context, creatorID string, status *Status) ([]Cause, error) {
	var causes []Cause
	query := r.db.WithContext(ctx).Where("creator_id = ?", creatorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("created_at DESC").Find(&causes).Error; err != nil {
		return nil, err
	}
	return causes, nil
}

// MarkFundedCauses flips active causes whose current amount reached a positive target.
func (r *gormRepository) MarkFundedCauses(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Cause{}).
		Where("status = ? AND target_amount > 0 AND current_amount >= target_amount", StatusActive).
		Update("status", StatusFunded)
	return result.RowsAffected, result.Error
}
