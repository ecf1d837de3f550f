package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	domainErrors "github.com/thomas-vilte/mateci/internal/errors"
)

type (
	Config struct {
		ProjectSlug   string `toml:"project_slug"`
		DebugRequests bool   `toml:"debug_requests"`
		MaxPages      int    `toml:"max_pages"`
		PathFile      string `toml:"-"`

		GitHub   ServiceConfig `toml:"github"`
		CircleCI ServiceConfig `toml:"circleci"`
	}

	ServiceConfig struct {
		Token   string `toml:"token,omitempty"`
		BaseURL string `toml:"base_url,omitempty"`
	}
)

const defaultMaxPages = 10

// LoadConfig reads the TOML config at path, or from ~/.mateci/config.toml
// when path is a directory. A default file is created on first run.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".toml" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mateci")
		configPath = filepath.Join(configDir, "config.toml")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}
	config.PathFile = configPath

	if config.MaxPages <= 0 {
		config.MaxPages = defaultMaxPages
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		MaxPages: defaultMaxPages,
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	if err := writeConfig(config, path); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes the config back to the file it was loaded from.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return domainErrors.ErrConfigMissing.WithContext("reason", "config file path not set")
	}

	return writeConfig(config, config.PathFile)
}

func writeConfig(config *Config, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("encoding config file: %w", err)
	}
	return nil
}

func validateConfig(config *Config) error {
	// An empty slug is fine until a command actually needs one; commands
	// check via RequireSlug.
	if config.ProjectSlug != "" {
		if err := ValidateSlug(config.ProjectSlug); err != nil {
			return err
		}
	}
	if config.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative, got %d", config.MaxPages)
	}
	return nil
}

// ValidateSlug checks the owner/repo shape without hitting any API.
func ValidateSlug(slug string) error {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domainErrors.ErrInvalidSlug.WithContext("slug", slug)
	}
	return nil
}

// RequireSlug returns the effective slug, preferring the override (a CLI
// flag) over the configured one.
func (c *Config) RequireSlug(override string) (string, error) {
	slug := c.ProjectSlug
	if override != "" {
		slug = override
	}
	if slug == "" {
		return "", domainErrors.ErrSlugMissing
	}
	if err := ValidateSlug(slug); err != nil {
		return "", err
	}
	return slug, nil
}
