// Package diagnostics supplies the zap-backed implementation of
// engine.Diagnostics, wired in by drivers (internal/prefab.Builder callers,
// cmd/demo). The kernel package never imports zap directly -- it declares
// its own Diagnostics interface -- so this package exists to bridge the
// two. Grounded on thraizz-mage/cmd/server/main.go's initLogger.
package diagnostics

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nightfall/internal/config"
	"nightfall/internal/engine"
)

// ZapDiagnostics adapts a *zap.Logger to engine.Diagnostics.
type ZapDiagnostics struct {
	logger *zap.Logger
}

// New constructs a ZapDiagnostics from cfg.LogLevel/cfg.LogFormat, following
// the teacher's level-switch/NewDevelopmentConfig-or-NewProductionConfig
// shape.
func New(cfg config.RuntimeConfig) (*ZapDiagnostics, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapDiagnostics{logger: logger}, nil
}

// NewNop wraps zap.NewNop, for tests that want a real engine.Diagnostics
// without any output.
func NewNop() *ZapDiagnostics { return &ZapDiagnostics{logger: zap.NewNop()} }

func fields(kv []any) []zap.Field {
	fs := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fs = append(fs, zap.Any(key, kv[i+1]))
	}
	return fs
}

func (d *ZapDiagnostics) Info(msg string, kv ...any)  { d.logger.Info(msg, fields(kv)...) }
func (d *ZapDiagnostics) Warn(msg string, kv ...any)  { d.logger.Warn(msg, fields(kv)...) }
func (d *ZapDiagnostics) Error(msg string, kv ...any) { d.logger.Error(msg, fields(kv)...) }

var _ engine.Diagnostics = (*ZapDiagnostics)(nil)
