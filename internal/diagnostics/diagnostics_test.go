package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nightfall/internal/config"
)

func TestNew_BuildsForEveryFormat(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := config.RuntimeConfig{LogLevel: "debug", LogFormat: format}
		d, err := New(cfg)
		require.NoError(t, err)
		require.NotNil(t, d)
		d.Info("hello", "k", "v")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := config.RuntimeConfig{LogLevel: "nonsense", LogFormat: "console"}
	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d)
}
