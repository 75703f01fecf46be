// File: internal/handle/checks.go
package handle

import (
	"context"

	"creator_support_backend/internal/datastore"
)

// StoreChecks backs allocation with handle lookups on the data store.
func StoreChecks(store datastore.Store) Checks {
	return Checks{
		PageHandleTaken: func(ctx context.Context, h string) (bool, error) {
			p, err := store.FindCreatorPageByHandle(ctx, h)
			return p != nil, err
		},
		ProfileHandleTaken: func(ctx context.Context, h string) (bool, error) {
			p, err := store.FindProfileByHandle(ctx, h)
			return p != nil, err
		},
	}
}
