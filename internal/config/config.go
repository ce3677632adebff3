package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Editor EditorConfig `json:"editor"`
	Media  MediaConfig  `json:"media"`
	Export ExportConfig `json:"export"`
}

// EditorConfig holds tunables for the interaction controller
type EditorConfig struct {
	HistoryLimit int     `json:"history_limit"`
	PickRadiusPx float64 `json:"pick_radius_px"`
}

// MediaConfig holds settings for media re-encoding
type MediaConfig struct {
	JPEGQuality  int  `json:"jpeg_quality"`
	WebPLossless bool `json:"webp_lossless"`
}

// ExportConfig holds settings for annotation export
type ExportConfig struct {
	DefaultFormat string `json:"default_format"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			HistoryLimit: 50,
			PickRadiusPx: 8.0,
		},
		Media: MediaConfig{
			JPEGQuality:  90,
			WebPLossless: false,
		},
		Export: ExportConfig{
			DefaultFormat: "json",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays ROIDS_* environment variables onto the configuration.
// A .env file in the working directory is loaded first if present.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("ROIDS_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Editor.HistoryLimit = n
		}
	}
	if v := os.Getenv("ROIDS_PICK_RADIUS_PX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Editor.PickRadiusPx = f
		}
	}
	if v := os.Getenv("ROIDS_JPEG_QUALITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Media.JPEGQuality = n
		}
	}
	if v := os.Getenv("ROIDS_EXPORT_FORMAT"); v != "" {
		c.Export.DefaultFormat = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Editor.HistoryLimit < 1 {
		return fmt.Errorf("editor.history_limit must be positive")
	}

	if c.Editor.PickRadiusPx <= 0 {
		return fmt.Errorf("editor.pick_radius_px must be positive")
	}

	if c.Media.JPEGQuality < 1 || c.Media.JPEGQuality > 100 {
		return fmt.Errorf("media.jpeg_quality must be between 1 and 100")
	}

	switch c.Export.DefaultFormat {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("export.default_format must be json, yaml, or yml")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "roids", "config.json")
}
