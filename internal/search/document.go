// File: internal/search/document.go
package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creator_support_backend/internal/creatorpage"
)

// pageDocument is the indexed shape of a creator page.
type pageDocument struct {
	UserID          string  `json:"user_id"`
	Handle          string  `json:"handle"`
	Title           string  `json:"title"`
	Tagline         string  `json:"tagline"`
	Bio             string  `json:"bio"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	AvatarURL       string  `json:"avatar_url"`
	SupportersCount int     `json:"supporters_count"`
	TotalRaised     float64 `json:"total_raised"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// PageToDocument converts a creator page to its Elasticsearch document.
func PageToDocument(p *creatorpage.CreatorPage) (string, error) {
	if p == nil {
		return "", errors.New("creator page cannot be nil")
	}
	doc := pageDocument{
		UserID:          p.UserID,
		Handle:          p.Handle,
		Title:           p.Title,
		Tagline:         p.Tagline,
		Bio:             p.Bio,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		AvatarURL:       p.AvatarURL,
		SupportersCount: p.SupportersCount,
		TotalRaised:     p.TotalRaised,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error marshalling creator page to JSON for ES: %w", err)
	}
	return string(b), nil
}
