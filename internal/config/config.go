package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dmahugh/pyfind/internal/search"
)

// Config represents pyfind configuration options.
type Config struct {
	// Colors maps output roles (folder, filename, match_line, match_text,
	// summary, warning) to terminal color names.
	Colors map[string]string `yaml:"colors"`

	// SkippedFolders are directory names that are never searched.
	SkippedFolders []string `yaml:"skipped_folders"`

	// PrefixLength is the width of the left label column ("line N:").
	PrefixLength int `yaml:"prefix_length"`

	// Extensions is the default file extension scope.
	Extensions []string `yaml:"extensions"`

	// ProjectsFile is the path to the project-roots list searched by the
	// projects command. Empty means $HOME/projects.txt.
	ProjectsFile string `yaml:"projects_file"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Colors: map[string]string{
			"folder":     "green",
			"filename":   "white",
			"match_line": "cyan",
			"match_text": "green",
			"summary":    "green",
			"warning":    "red",
		},
		SkippedFolders: search.DefaultSkippedFolders,
		PrefixLength:   12,
		Extensions:     []string{".py", ".ipynb"},
		ProjectsFile:   "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-empty values from the file, merging with defaults
	for role, name := range fileCfg.Colors {
		cfg.Colors[role] = name
	}
	if len(fileCfg.SkippedFolders) > 0 {
		cfg.SkippedFolders = fileCfg.SkippedFolders
	}
	if fileCfg.PrefixLength != 0 {
		cfg.PrefixLength = fileCfg.PrefixLength
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if fileCfg.ProjectsFile != "" {
		cfg.ProjectsFile = fileCfg.ProjectsFile
	}

	return cfg, nil
}

// DefaultPath returns the default config file location, ~/.pyfind.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pyfind.yaml"
	}
	return filepath.Join(home, ".pyfind.yaml")
}

// ResolveProjectsFile returns the configured projects file path, falling
// back to projects.txt in the home directory.
func (c *Config) ResolveProjectsFile() string {
	if c.ProjectsFile != "" {
		return c.ProjectsFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "projects.txt"
	}
	return filepath.Join(home, "projects.txt")
}
