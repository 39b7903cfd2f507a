package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "summary", cfg.QuoteMetrics)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("QUOTE_METRICS", "quotes")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "quotes", cfg.QuoteMetrics)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
}

func TestParse_RejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "0s")

	_, err := Parse()

	assert.Error(t, err)
}

func TestParse_RejectsBadDuration(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	_, err := Parse()

	assert.Error(t, err)
}
