package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no settings file was found.
const SourceEmbedded = "embedded defaults"

// Load reads host settings.
// Search order: customPath -> ~/.snowdodge/config.yaml -> ./configs/snowdodge.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are fine.
// The second return value names the source that was used.
func Load(customPath string) (Settings, string, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultSettings(), "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultSettings(), "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSettings(), "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "snowdodge.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultSettings(), "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSettings(), "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes data over the default settings.
func parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSettings(), err
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snowdodge", filename)
}
