// Package config loads the engine-level runtime options that are not
// gameplay rules: logging level/format, the recursion depth cap, and
// history retention. Gameplay content (factions, roles, win conditions)
// belongs to internal/prefab instead. Grounded on
// anasdox-workline/cmd/wl/main.go's viper usage (env-bound settings with
// defaults), adapted from flag-binding to a single Load call suited to a
// library rather than a CLI.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// RuntimeConfig holds the non-gameplay knobs a driver sets up once at
// startup.
type RuntimeConfig struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// MaxQueueDepth caps nested ActionQueue recursion before DrainAll
	// reports EngineBug (spec §4.11's "if exceeded, what happens?").
	MaxQueueDepth int
	// HistoryRetention caps how many HistoryEntry records Game.History
	// keeps before trimming the oldest; zero means unbounded.
	HistoryRetention int
}

const envPrefix = "NIGHTFALL"

// Load reads RuntimeConfig from environment variables (NIGHTFALL_LOG_LEVEL,
// NIGHTFALL_LOG_FORMAT, NIGHTFALL_MAX_QUEUE_DEPTH,
// NIGHTFALL_HISTORY_RETENTION), falling back to defaults for anything
// unset.
func Load() RuntimeConfig {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("max_queue_depth", 20)
	v.SetDefault("history_retention", 0)

	return RuntimeConfig{
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		MaxQueueDepth:    v.GetInt("max_queue_depth"),
		HistoryRetention: v.GetInt("history_retention"),
	}
}
