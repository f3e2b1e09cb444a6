package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Pointer fields so an
// absent key is distinguishable from a zero value; precedence is
// CLI > local > global.
type FileConfig struct {
	Lang     *string  `yaml:"lang"`
	Country  []string `yaml:"country"`
	Tasks    []string `yaml:"tasks"`
	AllTasks *bool    `yaml:"all_tasks"`
	Split    *string  `yaml:"split"`
	Mode     *string  `yaml:"mode"`
	Template *string  `yaml:"template"`

	NoColor   *bool `yaml:"no_color"`
	NoAudit   *bool `yaml:"no_audit"`
	ShowStats *bool `yaml:"show_stats"`

	// Dataset filtering defaults for the filter subcommand.
	MinLength        *int     `yaml:"min_length"`
	MaxLength        *int     `yaml:"max_length"`
	MaxNonAlphaRatio *float64 `yaml:"max_nonalpha_ratio"`
	Dedup            *bool    `yaml:"dedup"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches dir for a local config file.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".piistream.yml", ".piistream.yaml", "piistream.yml", "piistream.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG config home or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		base = filepath.Join(home, ".config")
	}
	return LoadFile(filepath.Join(base, "piistream", "config.yml"))
}
