package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, 20, cfg.MaxQueueDepth)
	require.Equal(t, 0, cfg.HistoryRetention)
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("NIGHTFALL_LOG_LEVEL", "debug")
	t.Setenv("NIGHTFALL_LOG_FORMAT", "json")
	t.Setenv("NIGHTFALL_MAX_QUEUE_DEPTH", "5")
	t.Setenv("NIGHTFALL_HISTORY_RETENTION", "100")

	cfg := Load()
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 5, cfg.MaxQueueDepth)
	require.Equal(t, 100, cfg.HistoryRetention)
}
