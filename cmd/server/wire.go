// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"creator_support_backend/internal/app"
	"creator_support_backend/internal/category"
	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/config"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/datastore"
	"creator_support_backend/internal/firebase"
	"creator_support_backend/internal/jobs"
	"creator_support_backend/internal/onboarding"
	"creator_support_backend/internal/platform/logger"
	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/search"
	"creator_support_backend/internal/uistate"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		provideDatabase,
		provideSearchClient,

		// Identity
		firebase.NewAuthenticator,

		// Records
		profile.NewGORMRepository,
		profile.NewService,
		profile.NewHandler,
		creatorpage.NewGORMRepository,
		creatorpage.NewService,
		creatorpage.NewHandler,
		cause.NewGORMRepository,
		cause.NewService,
		cause.NewHandler,
		category.NewService,
		category.NewHandler,
		datastore.NewStore,

		// Search
		search.NewService,
		search.NewHandler,
		wire.Bind(new(onboarding.PageIndexer), new(*search.Service)),

		// Session-scoped state machines
		provideAllocator,
		onboarding.NewService,
		uistate.NewStoreFromConfig,
		uistate.NewHandler,

		// Jobs
		jobs.NewCauseFundingJob,

		// Application Layer
		wire.Struct(new(app.Handlers), "*"),
		app.NewServer,
	)
	return nil, nil, nil
}
