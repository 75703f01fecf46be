// File: internal/profile/model.go
package profile

import (
	"time"

	"creator_support_backend/internal/common"

	"github.com/google/uuid"
)

// Profile is the per-account record. UserID is the identity provider's uid.
type Profile struct {
	common.BaseModel
	UserID        string `gorm:"type:varchar(128);not null;uniqueIndex:idx_profiles_user_id"`
	Handle        string `gorm:"type:varchar(100);not null;default:'';index:idx_profiles_handle,unique,where:handle <> ''"`
	DisplayName   string `gorm:"type:varchar(255);not null;default:''"`
	IsCreator     bool   `gorm:"not null;default:false"`
	Category      string `gorm:"type:varchar(50);not null;default:''"`
	Subcategory   string `gorm:"type:varchar(100);not null;default:''"`
	Bio           string `gorm:"type:text;not null;default:''"`
	AvatarURL     string `gorm:"type:text;not null;default:''"`
	CoverImageURL string `gorm:"type:text;not null;default:''"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// HasHandle reports whether a handle was ever assigned.
func (p *Profile) HasHandle() bool {
	return p != nil && p.Handle != ""
}

// ProfileResponse defines the structure for profile data sent in API responses.
type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	Handle        string    `json:"handle"`
	DisplayName   string    `json:"display_name"`
	IsCreator     bool      `json:"is_creator"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToProfileResponse converts a Profile model to a ProfileResponse DTO.
func ToProfileResponse(p *Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Handle:        p.Handle,
		DisplayName:   p.DisplayName,
		IsCreator:     p.IsCreator,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Bio:           p.Bio,
		AvatarURL:     p.AvatarURL,
		CoverImageURL: p.CoverImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
