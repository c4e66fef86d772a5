package config

import (
	"fmt"
	"os"
	"path/filepath"

	"slideshow-builder/internal/logging"
	"slideshow-builder/internal/slideshow"

	"gopkg.in/yaml.v3"
)

// AppName names the per-application config and cache subdirectories.
const AppName = "slideshow-builder"

// Config is the full configuration file.
type Config struct {
	Slideshows []slideshow.Spec `yaml:"slideshows"`
}

// Path returns the configuration file location: SLIDESHOW_CONFIG if
// set, otherwise config.yaml under the platform config directory.
func Path() (string, error) {
	if override := os.Getenv("SLIDESHOW_CONFIG"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, AppName, "config.yaml"), nil
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  CONFIG FILE:      %s", path)
	logging.Info("  LOG_LEVEL:        %s", logging.GetLevel())

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for i := range cfg.Slideshows {
		if err := cfg.Slideshows[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	logging.Info("  SLIDESHOWS:       %d", len(cfg.Slideshows))
	for _, show := range cfg.Slideshows {
		logging.Info("    %s <- %v", show.Path, show.ImageDirs)
	}

	return &cfg, nil
}
