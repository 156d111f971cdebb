// Package logging builds the zap loggers used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger at level writing to output. Format "json" selects the
// production encoder; anything else gives the colored console encoder.
// A nil output writes to stderr.
func New(level, format string, output zapcore.WriteSyncer) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		var zapLevel zapcore.Level
		if err := zapLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	if output == nil {
		output = zapcore.Lock(os.Stderr)
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	}

	core := zapcore.NewCore(encoder, output, cfg.Level)
	return zap.New(core, zap.AddCaller()), nil
}

// Must is New for callers that already validated the level.
func Must(level, format string, output zapcore.WriteSyncer) *zap.Logger {
	l, err := New(level, format, output)
	if err != nil {
		panic(err)
	}
	return l
}
