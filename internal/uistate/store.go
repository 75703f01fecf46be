// File: internal/uistate/store.go

// Package uistate keeps the per-account screen state (router, onboarding and
// payout wizards) in memory. Entries expire after a period of inactivity and
// a restart discards all of them; both simply start the account over.
package uistate

import (
	"sync"
	"time"

	"creator_support_backend/internal/config"
	"creator_support_backend/internal/navigation"
	"creator_support_backend/internal/onboarding"
	"creator_support_backend/internal/payout"

	"github.com/patrickmn/go-cache"
)

// Entry is one account's UI state.
type Entry struct {
	Router     *navigation.Router
	Onboarding *onboarding.Wizard
	Payout     *payout.Wizard
}

// Store maps account ids to entries with a sliding expiry.
type Store struct {
	mu          sync.Mutex
	cache       *cache.Cache
	ttl         time.Duration
	providerURL string
}

// StoreConfig holds the settings for a Store.
type StoreConfig struct {
	TTL               time.Duration
	CleanupInterval   time.Duration
	PayoutProviderURL string
}

// NewStore creates a store from explicit settings.
func NewStore(cfg StoreConfig) *Store {
	return &Store{
		cache:       cache.New(cfg.TTL, cfg.CleanupInterval),
		ttl:         cfg.TTL,
		providerURL: cfg.PayoutProviderURL,
	}
}

// NewStoreFromConfig creates a store from the application config.
func NewStoreFromConfig(cfg *config.Config) *Store {
	return NewStore(StoreConfig{
		TTL:               cfg.UIStateTTL,
		CleanupInterval:   cfg.UIStateCleanupInterval,
		PayoutProviderURL: cfg.PayoutProviderURL,
	})
}

// Get returns the entry for userID, creating a fresh one when none is live,
// and pushes its expiry forward.
func (s *Store) Get(userID string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, found := s.cache.Get(userID); found {
		e := v.(*Entry)
		s.cache.Set(userID, e, cache.DefaultExpiration)
		return e
	}
	e := &Entry{
		Router:     navigation.NewRouter(),
		Onboarding: onboarding.NewWizard(),
		Payout:     payout.NewWizard(s.providerURL),
	}
	s.cache.Set(userID, e, cache.DefaultExpiration)
	return e
}

// Drop forgets userID's state, e.g. on sign-out.
func (s *Store) Drop(userID string) {
	s.mu.Lock()
	s.cache.Delete(userID)
	s.mu.Unlock()
}

// Len is the number of live entries.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
