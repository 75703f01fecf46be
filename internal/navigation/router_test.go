// File: internal/navigation/router_test.go
package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_StartsAtHome(t *testing.T) {
	assert.Equal(t, KindHome, NewRouter().Current().Kind())
}

func TestRouter_CreatorScopedThreading(t *testing.T) {
	ref := CreatorRef{ID: "creator-1", Name: "Maria", Avatar: "https://cdn/maria.png", PageID: "page-9"}
	r := NewRouter()
	r.Creator(ref.ID)

	tabs := []Tab{TabMembership, TabPosts, TabShop, TabMembership, TabShop, TabPosts, TabMembership}
	for i, tab := range tabs {
		current, ok := RefOf(r.Current())
		if i == 0 {
			require.False(t, ok)
			current = ref
		} else {
			require.True(t, ok)
		}
		p, err := r.SwitchTab(tab, current)
		require.NoError(t, err)

		got, ok := RefOf(p)
		require.True(t, ok, "tab %s", tab)
		assert.Equal(t, ref, got, "hop %d to %s", i, tab)
	}

	p, err := r.SwitchTab(TabHome, ref)
	require.NoError(t, err)
	assert.Equal(t, Creator{CreatorID: "creator-1"}, p)
}

func TestRouter_MembershipThenPostsPreservesRef(t *testing.T) {
	r := NewRouter()
	r.Creator("X")
	r.Membership("X", "name", "avatar", "pageId")

	ref, ok := RefOf(r.Current())
	require.True(t, ok)
	r.Posts(ref.ID, ref.Name, ref.Avatar, ref.PageID)

	posts, ok := r.Current().(Posts)
	require.True(t, ok)
	assert.Equal(t, CreatorRef{ID: "X", Name: "name", Avatar: "avatar", PageID: "pageId"}, posts.CreatorRef)
}

func TestRouter_ShopArgumentOrder(t *testing.T) {
	r := NewRouter()
	p := r.Shop("page-9", "Maria", "", "creator-1")
	assert.Equal(t, Shop{CreatorRef{ID: "creator-1", Name: "Maria", Avatar: "", PageID: "page-9"}}, p)
}

func TestRouter_NoValidation(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, Creator{CreatorID: ""}, r.Creator(""))
	assert.Equal(t, Category{Category: "robots"}, r.Category("robots", ""))
	assert.Equal(t, KindHome, r.Go(nil).Kind())

	_, err := r.SwitchTab("about", CreatorRef{})
	assert.Error(t, err)
	assert.Equal(t, KindHome, r.Current().Kind())
}

func TestRouter_ConcurrentTransitions(t *testing.T) {
	r := NewRouter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); r.Dashboard() }()
		go func() { defer wg.Done(); _ = r.Current().Kind() }()
	}
	wg.Wait()
	assert.Equal(t, KindDashboard, r.Current().Kind())
}
