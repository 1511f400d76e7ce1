package config

import (
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	kenv "github.com/knadh/koanf/providers/env"
	kfile "github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ClientConfig holds the connection settings read from a config file.
type ClientConfig struct {
	APIKey  string            `koanf:"api_key"`
	BaseURL string            `koanf:"base_url"`
	Headers map[string]string `koanf:"headers"`
}

var (
	loadOnce sync.Once
	loaded   *ClientConfig
	loadErr  error
)

// Load loads configuration from path or default locations. Load is safe for repeated calls.
//
// Priority:
// 1. PERCEPTRON_CONFIG_PATH if set
// 2. ./config.yaml
func Load() (*ClientConfig, error) {
	loadOnce.Do(func() {
		k := koanf.New(".")

		// Determine path
		path := os.Getenv("PERCEPTRON_CONFIG_PATH")
		if path == "" {
			path = "config.yaml"
		}

		// Load file with YAML parser
		if err := k.Load(kfile.Provider(path), yaml.Parser()); err != nil {
			loadErr = err
			return
		}

		// Environment overrides: PERCEPTRON__API_KEY=...
		// Double underscore splits levels.
		if err := k.Load(kenv.Provider("PERCEPTRON__", "__", func(s string) string {
			return "perceptron__" + strings.ToLower(strings.TrimPrefix(s, "PERCEPTRON__"))
		}), nil); err != nil {
			loadErr = err
			return
		}

		var cfg ClientConfig
		if err := k.Unmarshal("perceptron", &cfg); err != nil {
			loadErr = err
			return
		}

		// Resolve environment variables in string fields
		resolveEnvVars(&cfg)

		loaded = &cfg
	})
	return loaded, loadErr
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// resolveEnvVars resolves ${VAR} patterns in config string fields
func resolveEnvVars(cfg *ClientConfig) {
	cfg.APIKey = resolveEnvString(cfg.APIKey)
	cfg.BaseURL = resolveEnvString(cfg.BaseURL)
	for name, value := range cfg.Headers {
		cfg.Headers[name] = resolveEnvString(value)
	}
}

// resolveEnvString replaces ${VAR} with environment variable values
func resolveEnvString(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR}
		varName := match[2 : len(match)-1] // Remove ${ and }
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Return original if env var not found
	})
}
