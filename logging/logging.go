// Package logging provides zap logger construction.
package logging

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a zap logger from the given preset name, or,
// if the name matches no preset, from the JSON configuration file at
// that path.
//
// Available presets: console, console-nocolor, console-notime,
// systemd, production, development. The level argument applies to the
// console and systemd presets.
func NewZapLogger(preset string, level zapcore.Level) (*zap.Logger, error) {
	var cfg zap.Config

	switch preset {
	case "console", "console-nocolor", "console-notime":
		cfg = zap.Config{
			Level:             zap.NewAtomicLevelAt(level),
			DisableCaller:     true,
			DisableStacktrace: true,
			Encoding:          "console",
			EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
			OutputPaths:       []string{"stderr"},
			ErrorOutputPaths:  []string{"stderr"},
		}
		switch preset {
		case "console":
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		case "console-notime":
			cfg.EncoderConfig.TimeKey = zapcore.OmitKey
		}

	case "systemd":
		// journald records its own timestamps.
		cfg = zap.Config{
			Level:             zap.NewAtomicLevelAt(level),
			DisableCaller:     true,
			DisableStacktrace: true,
			Encoding:          "console",
			EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
			OutputPaths:       []string{"stderr"},
			ErrorOutputPaths:  []string{"stderr"},
		}
		cfg.EncoderConfig.TimeKey = zapcore.OmitKey

	case "production":
		cfg = zap.NewProductionConfig()

	case "development":
		cfg = zap.NewDevelopmentConfig()

	default:
		data, err := os.ReadFile(preset)
		if err != nil {
			return nil, fmt.Errorf("failed to read zap config file: %w", err)
		}
		if err = json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse zap config file %s: %w", preset, err)
		}
	}

	return cfg.Build()
}
