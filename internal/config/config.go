package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdconv "github.com/alnah/go-mdconv"
	"github.com/alnah/go-mdconv/internal/fileutil"
	"github.com/alnah/go-mdconv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// AppDir is the directory under the user config dir searched for configs.
const AppDir = "go-mdconv"

// Config is the YAML representation of conversion settings.
// Unset fields leave the defaults in place.
type Config struct {
	Format    string   `yaml:"format"`    // html, xml, man, commonmark, latex
	Width     *int     `yaml:"width"`     // wrap width, 0 = no wrap
	Options   []string `yaml:"options"`   // option names, e.g. [smart, sourcepos]
	Highlight bool     `yaml:"highlight"` // html only
}

// DefaultConfig returns an empty config, which resolves to the library
// defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks every field against the names the library accepts.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := mdconv.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
		}
	}
	if c.Width != nil && *c.Width < 0 {
		return fmt.Errorf("%w: width: %w: %d (must be >= 0)", ErrInvalidConfig, mdconv.ErrInvalidWidth, *c.Width)
	}
	for _, name := range c.Options {
		if _, err := mdconv.ParseOption(name); err != nil {
			return fmt.Errorf("%w: options: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Apply overlays the config onto base and returns the result. The config
// must have been validated.
func (c *Config) Apply(base mdconv.Config) (mdconv.Config, error) {
	out := base
	if c.Format != "" {
		f, err := mdconv.ParseFormat(c.Format)
		if err != nil {
			return base, err
		}
		out.Format = f
	}
	if c.Width != nil {
		out.Width = *c.Width
	}
	for _, name := range c.Options {
		opt, err := mdconv.ParseOption(name)
		if err != nil {
			return base, err
		}
		out.Options |= opt
	}
	if c.Highlight {
		out.Highlight = true
	}
	return out, nil
}

// LoadConfig loads a config by name or path.
// A value containing a path separator is read as a file path; otherwise
// NAME.yaml and NAME.yml are searched in the current directory, then in
// the user config directory. Unknown keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in search
// order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
