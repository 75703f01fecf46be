// File: internal/profile/repository.go
package profile

import (
	"context"
	"errors"
	"strings"

	"creator_support_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for profile data operations.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	FindByHandle(ctx context.Context, handle string) (*Profile, error)
	ListCreators(ctx context.Context, query CreatorQuery) ([]Profile, *common.Pagination, error)
}

// CreatorQuery filters creator profiles for the category screen.
type CreatorQuery struct {
	Category    string
	Subcategory string
	Page        int
	PageSize    int
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM profile repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, p *Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("Profile with this user or handle already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) Update(ctx context.Context, p *Profile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("Update failed: handle already taken.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Profile not found for this user.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindByHandle(ctx context.Context, handle string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Profile not found with this handle.")
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) ListCreators(ctx context.Context, query CreatorQuery) ([]Profile, *common.Pagination, error) {
	var profiles []Profile
	var total int64

	db := r.db.WithContext(ctx).Model(&Profile{}).
		Where("is_creator = ?", true).
		Where("category = ?", query.Category)
	if query.Subcategory != "" {
		db = db.Where("subcategory = ?", query.Subcategory)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	err := db.Order("created_at DESC").
		Offset(common.Offset(query.Page, query.PageSize)).
		Limit(query.PageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, nil, err
	}
	return profiles, common.NewPagination(total, query.Page, query.PageSize), nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
