// File: internal/platform/database/sqlitetest/sqlitetest.go

// Package sqlitetest opens throwaway SQLite databases built from the goose
// migrations, so tests run against the same constraints Postgres enforces.
package sqlitetest

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"testing"
	"testing/fstest"

	"creator_support_backend/migrations"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Postgres-only syntax in the migrations and its SQLite equivalent.
var postgresOnly = strings.NewReplacer(
	"UUID PRIMARY KEY DEFAULT gen_random_uuid()", "TEXT PRIMARY KEY",
	"'[]'::jsonb", "'[]'",
	"TIMESTAMPTZ", "DATETIME",
)

// MirrorFS returns the embedded migrations rewritten for SQLite. Column types,
// NOT NULL constraints, defaults and indexes are left as written.
func MirrorFS() (fs.FS, error) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("listing migrations: %w", err)
	}
	mirror := fstest.MapFS{}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		raw, err := fs.ReadFile(migrations.FS, e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", e.Name(), err)
		}
		mirror[e.Name()] = &fstest.MapFile{Data: []byte(postgresOnly.Replace(string(raw)))}
	}
	return mirror, nil
}

// Open returns a private in-memory database migrated to the latest version.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	fsys, err := MirrorFS()
	require.NoError(t, err)
	provider, err := goose.NewProvider(goose.DialectSQLite3, sqlDB, fsys)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)
	return db
}
