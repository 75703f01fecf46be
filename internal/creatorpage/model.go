// File: internal/creatorpage/model.go
package creatorpage

import (
	"time"

	"creator_support_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultSupportItemName  = "coffee"
	DefaultSupportItemEmoji = "☕"
	DefaultSupportPrice     = 5.00
)

// GalleryImage is one entry of a page's ordered gallery.
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// CreatorPage is the public support page of a creator. UserID is the owner.
type CreatorPage struct {
	common.BaseModel
	UserID           string         `gorm:"type:varchar(128);not null;uniqueIndex:idx_creator_pages_user_id"`
	Handle           string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_creator_pages_handle"`
	Title            string         `gorm:"type:varchar(255);not null"`
	Bio              string         `gorm:"type:text;not null;default:''"`
	Tagline          string         `gorm:"type:varchar(255);not null;default:''"`
	AvatarURL        string         `gorm:"type:text;not null;default:''"`
	CoverImageURL    string         `gorm:"type:text;not null;default:''"`
	SocialTwitter    string         `gorm:"type:varchar(255);not null;default:''"`
	SocialInstagram  string         `gorm:"type:varchar(255);not null;default:''"`
	SocialWebsite    string         `gorm:"type:varchar(255);not null;default:''"`
	Category         string         `gorm:"type:varchar(100);not null;default:''"`
	Subcategory      string         `gorm:"type:varchar(100);not null;default:''"`
	SupportItemName  string         `gorm:"type:varchar(100);not null;default:'coffee'"`
	SupportItemEmoji string         `gorm:"type:varchar(16);not null;default:''"`
	SupportPrice     float64        `gorm:"type:numeric(12,2);not null;default:5.00"`
	GalleryImages    []GalleryImage `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	SupportersCount  int            `gorm:"not null;default:0"`
	TotalRaised      float64        `gorm:"type:numeric(14,2);not null;default:0"`
}

// TableName specifies the table name for the CreatorPage model.
func (CreatorPage) TableName() string {
	return "creator_pages"
}

// BeforeSave keeps the gallery column non-null; the json serializer writes a nil slice as NULL.
func (p *CreatorPage) BeforeSave(tx *gorm.DB) error {
	if p.GalleryImages == nil {
		p.GalleryImages = []GalleryImage{}
	}
	return nil
}

// CreatorPageResponse defines the structure for page data sent in API responses.
type CreatorPageResponse struct {
	ID               uuid.UUID      `json:"id"`
	UserID           string         `json:"user_id"`
	Handle           string         `json:"handle"`
	Title            string         `json:"title"`
	Bio              string         `json:"bio"`
	Tagline          string         `json:"tagline"`
	AvatarURL        string         `json:"avatar_url"`
	CoverImageURL    string         `json:"cover_image_url"`
	SocialTwitter    string         `json:"social_twitter"`
	SocialInstagram  string         `json:"social_instagram"`
	SocialWebsite    string         `json:"social_website"`
	Category         string         `json:"category"`
	Subcategory      string         `json:"subcategory"`
	SupportItemName  string         `json:"support_item_name"`
	SupportItemEmoji string         `json:"support_item_emoji"`
	SupportPrice     float64        `json:"support_price"`
	GalleryImages    []GalleryImage `json:"gallery_images"`
	SupportersCount  int            `json:"supporters_count"`
	TotalRaised      float64        `json:"total_raised"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ToCreatorPageResponse converts a CreatorPage model to its DTO.
func ToCreatorPageResponse(p *CreatorPage) *CreatorPageResponse {
	if p == nil {
		return nil
	}
	gallery := p.GalleryImages
	if gallery == nil {
		gallery = []GalleryImage{}
	}
	return &CreatorPageResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Handle:           p.Handle,
		Title:            p.Title,
		Bio:              p.Bio,
		Tagline:          p.Tagline,
		AvatarURL:        p.AvatarURL,
		CoverImageURL:    p.CoverImageURL,
		SocialTwitter:    p.SocialTwitter,
		SocialInstagram:  p.SocialInstagram,
		SocialWebsite:    p.SocialWebsite,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		SupportItemName:  p.SupportItemName,
		SupportItemEmoji: p.SupportItemEmoji,
		SupportPrice:     p.SupportPrice,
		GalleryImages:    gallery,
		SupportersCount:  p.SupportersCount,
		TotalRaised:      p.TotalRaised,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
