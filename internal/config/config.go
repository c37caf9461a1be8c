// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dung89nm/ghn-baogia/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Tariff contains tariff-table configuration
	Tariff TariffConfig `json:"tariff"`

	// Extractor contains free-text extractor configuration
	Extractor ExtractorConfig `json:"extractor"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// TariffConfig contains tariff-table settings
type TariffConfig struct {
	// File is the path to an HCL tariff file.
	// Empty means the embedded default table is used.
	File string `json:"file,omitempty"`
}

// ExtractorConfig contains extractor settings
type ExtractorConfig struct {
	// MinConfidence is the confidence threshold above which a free-text
	// extraction is treated as a pricing request by callers.
	MinConfidence float64 `json:"min_confidence"`

	// DefaultGoodsType is used when a query names no goods category
	DefaultGoodsType string `json:"default_goods_type"`

	// DefaultVehicleType is used when a query names no vehicle category
	DefaultVehicleType string `json:"default_vehicle_type"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowCoefficients includes the applied coefficients in CLI output
	ShowCoefficients bool `json:"show_coefficients"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Tariff:  TariffConfig{},
		Extractor: ExtractorConfig{
			MinConfidence:      0.4,
			DefaultGoodsType:   "Hàng đóng hộp tiêu dùng",
			DefaultVehicleType: "Tải",
		},
		Output: OutputConfig{
			DefaultFormat:    "cli",
			ShowCoefficients: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
