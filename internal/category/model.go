// File: internal/category/model.go
package category

// Category is one entry of the closed cause catalog.
type Category struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	Subcategories []string `json:"subcategories"`
}

// FirstSubcategory is the subcategory selected whenever the category changes.
func (c Category) FirstSubcategory() string {
	if len(c.Subcategories) == 0 {
		return ""
	}
	return c.Subcategories[0]
}

// HasSubcategory reports whether sub is listed under c.
func (c Category) HasSubcategory(sub string) bool {
	for _, s := range c.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}

// CategoryResponse defines the structure for category data sent in API responses.
type CategoryResponse struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	Subcategories []string `json:"subcategories"`
	IsDefault     bool     `json:"is_default"`
}

// ToCategoryResponse converts a Category to its DTO.
func ToCategoryResponse(c Category) CategoryResponse {
	subs := make([]string, len(c.Subcategories))
	copy(subs, c.Subcategories)
	return CategoryResponse{
		Key:           c.Key,
		Label:         c.Label,
		Subcategories: subs,
		IsDefault:     c.Key == DefaultKey,
	}
}
