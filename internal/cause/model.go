// File: internal/cause/model.go
package cause

import (
	"time"

	"creator_support_backend/internal/common"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a cause.
type Status string

const (
	StatusActive Status = "active"
	StatusFunded Status = "funded"
)

// Cause is a funding goal owned by a creator. CreatorID is the owner's user id.
type Cause struct {
	common.BaseModel
	CreatorID     string  `gorm:"type:varchar(128);not null;index:idx_causes_creator_status,priority:1"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   string  `gorm:"type:text;not null;default:''"`
	ImageURL      string  `gorm:"type:text;not null;default:''"`
	TargetAmount  float64 `gorm:"type:numeric(14,2);not null;default:0"`
	CurrentAmount float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Category      string  `gorm:"type:varchar(50);not null;default:''"`
	Status        Status  `gorm:"type:varchar(20);not null;default:'active';index:idx_causes_creator_status,priority:2"`
}

// TableName specifies the table name for the Cause model.
func (Cause) TableName() string {
	return "causes"
}

// Progress is CurrentAmount/TargetAmount clamped to [0,1]; zero when no target is set.
func (c *Cause) Progress() float64 {
	if c.TargetAmount <= 0 {
		return 0
	}
	p := c.CurrentAmount / c.TargetAmount
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// CreateCauseRequest is the body of POST /causes.
type CreateCauseRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	TargetAmount float64 `json:"target_amount" binding:"gte=0"`
	Category     string  `json:"category" binding:"max=100"`
}

// CauseResponse defines the structure for cause data sent in API responses.
type CauseResponse struct {
	ID            uuid.UUID `json:"id"`
	CreatorID     string    `json:"creator_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Progress      float64   `json:"progress"`
	Category      string    `json:"category"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCauseResponse converts a Cause model to a CauseResponse DTO.
func ToCauseResponse(c *Cause) CauseResponse {
	return CauseResponse{
		ID:            c.ID,
		CreatorID:     c.CreatorID,
		Title:         c.Title,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		Progress:      c.Progress(),
		Category:      c.Category,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCauseResponses converts a slice of causes.
func ToCauseResponses(causes []Cause) []CauseResponse {
	out := make([]CauseResponse, len(causes))
	for i := range causes {
		out[i] = ToCauseResponse(&causes[i])
	}
	return out
}
