// File: internal/handle/allocator_test.go
package handle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handleSet map[string]bool

func (s handleSet) exists(_ context.Context, h string) (bool, error) {
	return s[h], nil
}

func checksFor(pages, profiles handleSet) Checks {
	return Checks{PageHandleTaken: pages.exists, ProfileHandleTaken: profiles.exists}
}

func seq(base string, n int) handleSet {
	s := handleSet{base: true}
	for i := 1; i < n; i++ {
		s[fmt.Sprintf("%s%d", base, i)] = true
	}
	return s
}

func TestAllocate_FreeBaseIsReturned(t *testing.T) {
	res, err := NewAllocator(0).Allocate(context.Background(), Request{Base: "maria", AccountID: "acct"},
		checksFor(handleSet{"other": true}, handleSet{"another": true}))
	require.NoError(t, err)
	assert.Equal(t, "maria", res.Handle)
	assert.Equal(t, SourceProbe, res.Source)
}

func TestAllocate_FirstFreeSuffix(t *testing.T) {
	for _, k := range []int{1, 2, 17, 99} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			taken := seq("sam", k)
			res, err := NewAllocator(DefaultMaxCandidates).Allocate(context.Background(),
				Request{Base: "sam", AccountID: "acct"}, checksFor(taken, handleSet{}))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("sam%d", k), res.Handle)
		})
	}
}

func TestAllocate_ProfilesAlsoBlockFreshCandidates(t *testing.T) {
	res, err := NewAllocator(0).Allocate(context.Background(), Request{Base: "sam", AccountID: "acct"},
		checksFor(handleSet{"sam": true}, handleSet{"sam1": true}))
	require.NoError(t, err)
	assert.Equal(t, "sam2", res.Handle)
}

func TestAllocate_MariaScenario(t *testing.T) {
	res, err := NewAllocator(0).Allocate(context.Background(), Request{Base: "maria", AccountID: "acct"},
		checksFor(handleSet{"maria": true, "maria1": true, "maria2": true}, handleSet{}))
	require.NoError(t, err)
	assert.Equal(t, "maria3", res.Handle)
}

func TestAllocate_ExhaustionFallsBack(t *testing.T) {
	taken := seq("maria", 100)

	res, err := NewAllocator(DefaultMaxCandidates).Allocate(context.Background(),
		Request{Base: "maria", AccountID: "a1b2c3d4e5f6"}, checksFor(taken, handleSet{}))
	require.NoError(t, err)
	assert.Equal(t, "user_a1b2c3d4", res.Handle)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestAllocate_FallbackIsNotRechecked(t *testing.T) {
	taken := seq("x", 3)
	taken["user_acct"] = true
	res, err := NewAllocator(3).Allocate(context.Background(), Request{Base: "x", AccountID: "acct"}, checksFor(taken, handleSet{}))
	require.NoError(t, err)
	assert.Equal(t, "user_acct", res.Handle)
}

func TestAllocate_ExistingPageWins(t *testing.T) {
	failing := func(context.Context, string) (bool, error) { return false, errors.New("must not be called") }
	res, err := NewAllocator(0).Allocate(context.Background(),
		Request{Base: "maria", AccountID: "acct", ExistingPageHandle: "legacy", ProfileHandle: "p"},
		Checks{PageHandleTaken: failing, ProfileHandleTaken: failing})
	require.NoError(t, err)
	assert.Equal(t, "legacy", res.Handle)
	assert.Equal(t, SourceExistingPage, res.Source)
	assert.Zero(t, res.Attempts)
}

func TestAllocate_ProfileHandleReused(t *testing.T) {
	res, err := NewAllocator(0).Allocate(context.Background(),
		Request{Base: "ignored", AccountID: "acct", ProfileHandle: "maria"},
		checksFor(handleSet{}, handleSet{"maria": true}))
	require.NoError(t, err)
	assert.Equal(t, "maria", res.Handle)
	assert.Equal(t, SourceProfile, res.Source)
}

func TestAllocate_ProfileBranchChecksPagesOnly(t *testing.T) {
	// maria1 is held by another profile; this path only looks at pages.
	res, err := NewAllocator(0).Allocate(context.Background(),
		Request{Base: "ignored", AccountID: "acct", ProfileHandle: "maria"},
		checksFor(handleSet{"maria": true}, handleSet{"maria": true, "maria1": true}))
	require.NoError(t, err)
	assert.Equal(t, "maria1", res.Handle)
	assert.Equal(t, SourceProbe, res.Source)
}

func TestAllocate_ProfileBranchProbesUpToBound(t *testing.T) {
	taken := seq("maria", 100)
	res, err := NewAllocator(DefaultMaxCandidates).Allocate(context.Background(),
		Request{AccountID: "acct", ProfileHandle: "maria"}, checksFor(taken, handleSet{}))
	require.NoError(t, err)
	assert.Equal(t, "maria100", res.Handle)

	taken["maria100"] = true
	res, err = NewAllocator(DefaultMaxCandidates).Allocate(context.Background(),
		Request{AccountID: "acct", ProfileHandle: "maria"}, checksFor(taken, handleSet{}))
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestAllocate_CheckErrorAborts(t *testing.T) {
	boom := errors.New("store unavailable")
	cases := map[string]Checks{
		"page check": {
			PageHandleTaken:    func(context.Context, string) (bool, error) { return false, boom },
			ProfileHandleTaken: handleSet{}.exists,
		},
		"profile check": {
			PageHandleTaken:    handleSet{}.exists,
			ProfileHandleTaken: func(context.Context, string) (bool, error) { return false, boom },
		},
	}
	for name, checks := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := NewAllocator(0).Allocate(context.Background(), Request{Base: "maria", AccountID: "acct"}, checks)
			assert.ErrorIs(t, err, boom)
			assert.Empty(t, res.Handle)
		})
	}
}

func TestAllocate_ProbeOrderIsAscending(t *testing.T) {
	var seen []string
	checks := Checks{
		PageHandleTaken: func(_ context.Context, h string) (bool, error) {
			seen = append(seen, h)
			return len(seen) < 4, nil
		},
		ProfileHandleTaken: handleSet{}.exists,
	}
	res, err := NewAllocator(0).Allocate(context.Background(), Request{Base: "b", AccountID: "acct"}, checks)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b1", "b2", "b3"}, seen)
	assert.Equal(t, "b3", res.Handle)
}

func TestDeriveBase(t *testing.T) {
	cases := map[string]string{
		"maria@example.com":     "maria",
		"Maria.Garcia@x.org":    "maria-garcia",
		"josé+news@example.com": "jose-news",
		"@example.com":          "user",
		"":                      "user",
		"no-at-sign":            "no-at-sign",
	}
	for email, want := range cases {
		assert.Equal(t, want, DeriveBase(email), email)
	}
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "user_abc", Fallback("abc"))
	assert.Equal(t, "user_12345678", Fallback("1234567890"))
}
