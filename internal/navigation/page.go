// File: internal/navigation/page.go

// Package navigation holds the screen router: one current Page from a closed
// set of variants, replaced wholesale by each transition.
package navigation

import "fmt"

// Kind enumerates the Page variants.
type Kind int

const (
	KindHome Kind = iota
	KindAuth
	KindFundraise
	KindExplore
	KindSearch
	KindDashboard
	KindProfileSetup
	KindCategory
	KindCreator
	KindMembership
	KindPosts
	KindShop
)

var kindNames = [...]string{
	KindHome:         "home",
	KindAuth:         "auth",
	KindFundraise:    "fundraise",
	KindExplore:      "explore",
	KindSearch:       "search",
	KindDashboard:    "dashboard",
	KindProfileSetup: "profile-setup",
	KindCategory:     "category",
	KindCreator:      "creator",
	KindMembership:   "membership",
	KindPosts:        "posts",
	KindShop:         "shop",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a wire name such as "profile-setup" back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Page is one router state. Only types in this package implement it.
type Page interface {
	Kind() Kind
	isPage()
}

// CreatorRef is what the creator-scoped screens need to link to each other
// without fetching the creator again.
type CreatorRef struct {
	ID     string `json:"creator_id"`
	Name   string `json:"creator_name"`
	Avatar string `json:"creator_avatar"`
	PageID string `json:"creator_page_id"`
}

type (
	Home         struct{}
	Auth         struct{}
	Fundraise    struct{}
	Explore      struct{}
	Search       struct{}
	Dashboard    struct{}
	ProfileSetup struct{}

	// Category lists creators of a category; Subcategory "" means all of them.
	Category struct {
		Category    string
		Subcategory string
	}

	Creator struct {
		CreatorID string
	}

	Membership struct{ CreatorRef }
	Posts      struct{ CreatorRef }
	Shop       struct{ CreatorRef }
)

func (Home) Kind() Kind         { return KindHome }
func (Auth) Kind() Kind         { return KindAuth }
func (Fundraise) Kind() Kind    { return KindFundraise }
func (Explore) Kind() Kind      { return KindExplore }
func (Search) Kind() Kind       { return KindSearch }
func (Dashboard) Kind() Kind    { return KindDashboard }
func (ProfileSetup) Kind() Kind { return KindProfileSetup }
func (Category) Kind() Kind     { return KindCategory }
func (Creator) Kind() Kind      { return KindCreator }
func (Membership) Kind() Kind   { return KindMembership }
func (Posts) Kind() Kind        { return KindPosts }
func (Shop) Kind() Kind         { return KindShop }

func (Home) isPage()         {}
func (Auth) isPage()         {}
func (Fundraise) isPage()    {}
func (Explore) isPage()      {}
func (Search) isPage()       {}
func (Dashboard) isPage()    {}
func (ProfileSetup) isPage() {}
func (Category) isPage()     {}
func (Creator) isPage()      {}
func (Membership) isPage()   {}
func (Posts) isPage()        {}
func (Shop) isPage()         {}

// RefOf returns the creator reference carried by p, if any.
func RefOf(p Page) (CreatorRef, bool) {
	switch v := p.(type) {
	case Membership:
		return v.CreatorRef, true
	case Posts:
		return v.CreatorRef, true
	case Shop:
		return v.CreatorRef, true
	default:
		return CreatorRef{}, false
	}
}
