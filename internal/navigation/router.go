// File: internal/navigation/router.go
package navigation

import (
	"fmt"
	"sync"
)

// Router holds the current Page. Transitions never fail and never validate
// their arguments; an unknown creator id is the screen's problem.
type Router struct {
	mu      sync.RWMutex
	current Page
}

// NewRouter starts at Home.
func NewRouter() *Router {
	return &Router{current: Home{}}
}

// Current returns the active page.
func (r *Router) Current() Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Go replaces the current page with p. A nil page resets to Home.
func (r *Router) Go(p Page) Page {
	if p == nil {
		p = Home{}
	}
	r.mu.Lock()
	r.current = p
	r.mu.Unlock()
	return p
}

func (r *Router) Home() Page         { return r.Go(Home{}) }
func (r *Router) Auth() Page         { return r.Go(Auth{}) }
func (r *Router) Fundraise() Page    { return r.Go(Fundraise{}) }
func (r *Router) Explore() Page      { return r.Go(Explore{}) }
func (r *Router) Search() Page       { return r.Go(Search{}) }
func (r *Router) Dashboard() Page    { return r.Go(Dashboard{}) }
func (r *Router) ProfileSetup() Page { return r.Go(ProfileSetup{}) }

// Category opens a category listing; pass "" for subcategory to show all.
func (r *Router) Category(category, subcategory string) Page {
	return r.Go(Category{Category: category, Subcategory: subcategory})
}

func (r *Router) Creator(creatorID string) Page {
	return r.Go(Creator{CreatorID: creatorID})
}

func (r *Router) Membership(creatorID, creatorName, creatorAvatar, creatorPageID string) Page {
	return r.Go(Membership{CreatorRef{ID: creatorID, Name: creatorName, Avatar: creatorAvatar, PageID: creatorPageID}})
}

func (r *Router) Posts(creatorID, creatorName, creatorAvatar, creatorPageID string) Page {
	return r.Go(Posts{CreatorRef{ID: creatorID, Name: creatorName, Avatar: creatorAvatar, PageID: creatorPageID}})
}

// Shop takes the page id first.
func (r *Router) Shop(creatorPageID, creatorName, creatorAvatar, creatorID string) Page {
	return r.Go(Shop{CreatorRef{ID: creatorID, Name: creatorName, Avatar: creatorAvatar, PageID: creatorPageID}})
}

// Tab names a creator-scoped screen.
type Tab string

const (
	TabHome       Tab = "home"
	TabMembership Tab = "membership"
	TabPosts      Tab = "posts"
	TabShop       Tab = "shop"
)

// SwitchTab moves between the creator-scoped screens carrying ref unchanged.
func (r *Router) SwitchTab(tab Tab, ref CreatorRef) (Page, error) {
	switch tab {
	case TabHome:
		return r.Creator(ref.ID), nil
	case TabMembership:
		return r.Membership(ref.ID, ref.Name, ref.Avatar, ref.PageID), nil
	case TabPosts:
		return r.Posts(ref.ID, ref.Name, ref.Avatar, ref.PageID), nil
	case TabShop:
		return r.Shop(ref.PageID, ref.Name, ref.Avatar, ref.ID), nil
	default:
		return nil, fmt.Errorf("unknown creator tab %q", tab)
	}
}
