// File: internal/creatorpage/repository.go
package creatorpage

import (
	"context"
	"errors"
	"strings"

	"creator_support_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for creator page data operations.
type Repository interface {
	Create(ctx context.Context, p *CreatorPage) error
	Update(ctx context.Context, p *CreatorPage) error
	FindByUserID(ctx context.Context, userID string) (*CreatorPage, error)
	FindByHandle(ctx context.Context, handle string) (*CreatorPage, error)
	List(ctx context.Context, page, pageSize int) ([]CreatorPage, *common.Pagination, error)
	FindInBatches(ctx context.Context, batchSize int, fn func(batch []CreatorPage) error) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM creator page repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, p *CreatorPage) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("A creator page with this owner or handle already exists.")
		}
		return err
	}
	return nil
}

// Update saves the editable fields. Handle and the supporter counters are never written here.
func (r *gormRepository) Update(ctx context.Context, p *CreatorPage) error {
	err := r.db.WithContext(ctx).Model(p).
		Select(
			"title", "bio", "tagline", "avatar_url", "cover_image_url",
			"social_twitter", "social_instagram", "social_website",
			"category", "subcategory",
			"support_item_name", "support_item_emoji", "support_price",
			"gallery_images", "updated_at",
		).
		Updates(p).Error
	if err != nil {
		return err
	}
	return nil
}

func (r *gormRepository) FindByUserID(ctx context.Context, userID string) (*CreatorPage, error) {
	var p CreatorPage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Creator page not found for this user.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindByHandle(ctx context.Context, handle string) (*CreatorPage, error) {
	var p CreatorPage
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Creator page not found with this handle.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) List(ctx context.Context, page, pageSize int) ([]CreatorPage, *common.Pagination, error) {
	var pages []CreatorPage
	var total int64

	db := r.db.WithContext(ctx).Model(&CreatorPage{})
	if err := db.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	err := db.Order("created_at DESC").
		Offset(common.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&pages).Error
	if err != nil {
		return nil, nil, err
	}
	return pages, common.NewPagination(total, page, pageSize), nil
}

func (r *gormRepository) FindInBatches(ctx context.Context, batchSize int, fn func(batch []CreatorPage) error) error {
	var pages []CreatorPage
	result := r.db.WithContext(ctx).FindInBatches(&pages, batchSize, func(tx *gorm.DB, _ int) error {
		return fn(pages)
	})
	return result.Error
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
