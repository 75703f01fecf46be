// File: internal/handle/allocator.go

// Package handle picks the public handle for a new creator page.
//
// Allocation reads the profiles and creator_pages collections and returns the
// first free candidate. Nothing is locked between those reads and the caller's
// insert, so two concurrent allocations can settle on the same candidate; the
// unique index on creator_pages.handle is what finally rejects the loser.
package handle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// DefaultMaxCandidates bounds the probe loop before falling back.
const DefaultMaxCandidates = 100

// Exists reports whether handle is already used in one collection.
type Exists func(ctx context.Context, handle string) (bool, error)

// Checks are the existence predicates allocation runs against.
type Checks struct {
	PageHandleTaken    Exists
	ProfileHandleTaken Exists
}

// Request describes the account asking for a handle.
type Request struct {
	// Base is the desired handle for an account without a usable profile handle.
	Base string
	// AccountID seeds the fallback handle.
	AccountID string
	// ExistingPageHandle is the handle of the account's page, "" when it has none.
	ExistingPageHandle string
	// ProfileHandle is the handle on the account's profile, "" when absent.
	ProfileHandle string
}

// Source says which rule produced a handle.
type Source int

const (
	SourceExistingPage Source = iota
	SourceProfile
	SourceProbe
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceExistingPage:
		return "existing-page"
	case SourceProfile:
		return "profile"
	case SourceProbe:
		return "probe"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is an allocated handle and how it was chosen.
type Result struct {
	Handle string
	Source Source
	// Attempts counts existence checks issued.
	Attempts int
}

// Allocator runs the allocation rules with a configured candidate bound.
type Allocator struct {
	maxCandidates int
}

// NewAllocator returns an Allocator; a non-positive bound selects DefaultMaxCandidates.
func NewAllocator(maxCandidates int) *Allocator {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Allocator{maxCandidates: maxCandidates}
}

// Allocate applies, in order:
//  1. an existing page handle is returned unchanged;
//  2. a profile handle no page uses is reused, otherwise profileHandle+"1".."N"
//     are probed against pages only;
//  3. Base, Base+"1".."N-1" are probed against pages and profiles;
//  4. when every candidate is taken, "user_" plus the first 8 characters of the
//     account id is returned without being checked.
//
// Any failed existence check aborts allocation with that error.
func (a *Allocator) Allocate(ctx context.Context, req Request, checks Checks) (Result, error) {
	if req.ExistingPageHandle != "" {
		return Result{Handle: req.ExistingPageHandle, Source: SourceExistingPage}, nil
	}

	attempts := 0
	pageTaken := func(h string) (bool, error) {
		attempts++
		taken, err := checks.PageHandleTaken(ctx, h)
		if err != nil {
			return false, fmt.Errorf("checking creator page handle %q: %w", h, err)
		}
		return taken, nil
	}
	profileTaken := func(h string) (bool, error) {
		attempts++
		taken, err := checks.ProfileHandleTaken(ctx, h)
		if err != nil {
			return false, fmt.Errorf("checking profile handle %q: %w", h, err)
		}
		return taken, nil
	}

	if req.ProfileHandle != "" {
		taken, err := pageTaken(req.ProfileHandle)
		if err != nil {
			return Result{}, err
		}
		if !taken {
			return Result{Handle: req.ProfileHandle, Source: SourceProfile, Attempts: attempts}, nil
		}
		// The profile collection is not consulted on this path.
		for i := 1; i <= a.maxCandidates; i++ {
			candidate := req.ProfileHandle + strconv.Itoa(i)
			taken, err := pageTaken(candidate)
			if err != nil {
				return Result{}, err
			}
			if !taken {
				return Result{Handle: candidate, Source: SourceProbe, Attempts: attempts}, nil
			}
		}
		return Result{Handle: Fallback(req.AccountID), Source: SourceFallback, Attempts: attempts}, nil
	}

	base := req.Base
	if base == "" {
		base = defaultBase
	}
	for i := 0; i < a.maxCandidates; i++ {
		candidate := base
		if i > 0 {
			candidate = base + strconv.Itoa(i)
		}
		taken, err := pageTaken(candidate)
		if err != nil {
			return Result{}, err
		}
		if taken {
			continue
		}
		taken, err = profileTaken(candidate)
		if err != nil {
			return Result{}, err
		}
		if !taken {
			return Result{Handle: candidate, Source: SourceProbe, Attempts: attempts}, nil
		}
	}
	return Result{Handle: Fallback(req.AccountID), Source: SourceFallback, Attempts: attempts}, nil
}

const (
	defaultBase    = "user"
	fallbackPrefix = "user_"
	fallbackIDLen  = 8
)

// Fallback is the synthetic handle used once every candidate is taken.
func Fallback(accountID string) string {
	id := accountID
	if len(id) > fallbackIDLen {
		id = id[:fallbackIDLen]
	}
	return fallbackPrefix + id
}

// DeriveBase turns an account email into a handle base: the local part,
// slugified, or "user" when nothing usable remains.
func DeriveBase(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	base := slug.Make(local)
	if base == "" {
		return defaultBase
	}
	return base
}
