// File: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("UI_STATE_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.ServerTimeout)
	assert.Equal(t, 15*time.Minute, cfg.UIStateTTL)
	assert.Equal(t, 100, cfg.HandleMaxCandidates)
	assert.Equal(t, "@hourly", cfg.CauseFundingJobSchedule)
	assert.False(t, cfg.SearchEnabled())
}

func TestLoad_ReleaseRequiresFirebaseKey(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveCandidateLimit(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("HANDLE_MAX_CANDIDATES", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable", DBTimezone: "UTC"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable TimeZone=UTC", cfg.DSN())
}
