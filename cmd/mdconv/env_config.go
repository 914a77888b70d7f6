package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	mdconv "github.com/alnah/go-mdconv"
)

// envPrefix is the prefix of every mdconv environment variable.
const envPrefix = "MDCONV_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly defaults without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDCONV_CONFIG: config file name or path
	Format     string // MDCONV_FORMAT: output format
	Width      string // MDCONV_WIDTH: wrap width
	Options    string // MDCONV_OPTIONS: comma-separated option names
}

// knownEnvVars lists valid MDCONV_* environment variables.
var knownEnvVars = map[string]bool{
	"MDCONV_CONFIG":  true,
	"MDCONV_FORMAT":  true,
	"MDCONV_WIDTH":   true,
	"MDCONV_OPTIONS": true,
}

// loadEnvConfig reads the MDCONV_* variables. Values are validated when
// applied, so that errors are reported like flag errors.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("MDCONV_CONFIG"),
		Format:     os.Getenv("MDCONV_FORMAT"),
		Width:      os.Getenv("MDCONV_WIDTH"),
		Options:    os.Getenv("MDCONV_OPTIONS"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized MDCONV_*
// variable, e.g. MDCONV_WIDHT.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "mdconv: warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values onto cfg.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *mdconv.Config) error {
	if env.Format != "" {
		f, err := mdconv.ParseFormat(env.Format)
		if err != nil {
			return fmt.Errorf("MDCONV_FORMAT: %w", err)
		}
		cfg.Format = f
	}

	if env.Width != "" {
		w, err := strconv.Atoi(strings.TrimSpace(env.Width))
		if err != nil {
			return fmt.Errorf("MDCONV_WIDTH: %w: %q is not a number", mdconv.ErrInvalidWidth, env.Width)
		}
		cfg.Width = w
	}

	for _, name := range strings.Split(env.Options, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		opt, err := mdconv.ParseOption(name)
		if err != nil {
			return fmt.Errorf("MDCONV_OPTIONS: %w", err)
		}
		cfg.Options |= opt
	}
	return nil
}
