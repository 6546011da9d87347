// Package logger builds the process-wide zap logger from config.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"propdir/internal/config"
)

// New constructs a zap logger. Console encoding pairs with the
// development encoder config; an unparseable level falls back to info.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	if encoding == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc := zap.Config{
		Level:             level,
		Development:       cfg.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if cfg.Sampling {
		zc.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}
	return zc.Build()
}
