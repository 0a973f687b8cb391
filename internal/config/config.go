// Package config loads meishiki settings from flags, MEISHIKI_* variables
// and an optional .meishiki.yaml through viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalid indicates a configuration value outside its accepted range.
var ErrInvalid = errors.New("invalid configuration")

// TelemetryConfig controls the JSONL event log.
type TelemetryConfig struct {
	Path string `mapstructure:"path"` // Empty disables telemetry
}

// MCPConfig holds configuration for the MCP tool server.
type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Addr      string `mapstructure:"addr"`
}

// Config holds all runtime configuration for a meishiki invocation.
// Values are populated from .meishiki.yaml, MEISHIKI_* env vars, and CLI flags.
type Config struct {
	Longitude     float64         `mapstructure:"longitude"`
	Gender        string          `mapstructure:"gender"`
	TrueSolarTime bool            `mapstructure:"true_solar_time"`
	CycleCount    int             `mapstructure:"cycle_count"`
	AnnualSpan    int             `mapstructure:"annual_span"`
	Output        string          `mapstructure:"output"`
	Verbose       bool            `mapstructure:"verbose"`
	Telemetry     TelemetryConfig `mapstructure:"telemetry"`
	MCP           MCPConfig       `mapstructure:"mcp"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("longitude", 135.0)
	viper.SetDefault("gender", "male")
	viper.SetDefault("true_solar_time", false)
	viper.SetDefault("cycle_count", 10)
	viper.SetDefault("annual_span", 10)
	viper.SetDefault("output", "json")
	viper.SetDefault("verbose", false)
	viper.SetDefault("telemetry.path", "")
	viper.SetDefault("mcp.transport", "stdio")
	viper.SetDefault("mcp.addr", "127.0.0.1:8392")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	switch c.Output {
	case "json", "text":
	default:
		return fmt.Errorf("%w: output %q (want json or text)", ErrInvalid, c.Output)
	}
	switch c.MCP.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("%w: mcp.transport %q (want stdio or http)", ErrInvalid, c.MCP.Transport)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %g", ErrInvalid, c.Longitude)
	}
	if c.CycleCount < 1 || c.CycleCount > 12 {
		return fmt.Errorf("%w: cycle_count %d (want 1-12)", ErrInvalid, c.CycleCount)
	}
	if c.AnnualSpan < 1 {
		return fmt.Errorf("%w: annual_span %d", ErrInvalid, c.AnnualSpan)
	}
	return nil
}
