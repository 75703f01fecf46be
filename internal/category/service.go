// File: internal/category/service.go
package category

import (
	"strings"

	"creator_support_backend/internal/common"
)

const (
	KeyPeople  = "people"
	KeyAnimals = "animals"
	KeyPlanet  = "planet"

	// DefaultKey is the category preselected by a fresh onboarding form.
	DefaultKey = KeyPeople
)

var catalog = []Category{
	{Key: KeyPeople, Label: "People", Subcategories: []string{"Community", "Healthcare", "Education", "Social Justice"}},
	{Key: KeyAnimals, Label: "Animals", Subcategories: []string{"Wildlife Conservation", "Animal Rescue", "Pet Adoption", "Endangered Species"}},
	{Key: KeyPlanet, Label: "Environment", Subcategories: []string{"Climate Action", "Ocean Cleanup", "Reforestation", "Renewable Energy"}},
}

// Service defines read access to the category catalog.
type Service interface {
	All() []Category
	Get(key string) (Category, bool)
	Default() Category
}

type staticService struct{}

// NewService returns the catalog service. The catalog is fixed at compile time.
func NewService() Service {
	return staticService{}
}

func (staticService) All() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

func (staticService) Get(key string) (Category, bool) {
	return Lookup(key)
}

func (staticService) Default() Category {
	c, _ := Lookup(DefaultKey)
	return c
}

// Lookup finds a catalog entry by key, case-insensitively.
func Lookup(key string) (Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range catalog {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Label returns the display label for key, or key itself when unknown.
func Label(key string) string {
	if c, ok := Lookup(key); ok {
		return c.Label
	}
	return key
}

// MustGet is like Lookup but returns a not-found API error for unknown keys.
func MustGet(key string) (Category, error) {
	c, ok := Lookup(key)
	if !ok {
		return Category{}, common.ErrNotFound.WithDetails("Category not found.")
	}
	return c, nil
}
