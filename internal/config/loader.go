package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables providing defaults for Config fields.
const (
	EnvAddr     = "MANGA_ADDR"
	EnvLogLevel = "MANGA_LOG_LEVEL"
	EnvWorkers  = "MANGA_WORKERS"
)

// Config holds runtime settings for the CLI and HTTP server.
// Zero values mean "unspecified" and are filled from Defaults.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	ManifestPath string `json:"manifest_path" yaml:"manifest_path" toml:"manifest_path"`
	ProjectRoot  string `json:"project_root" yaml:"project_root" toml:"project_root"`
	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	Workers      int    `json:"workers" yaml:"workers" toml:"workers"`
	// CORS is opt-in; origins/methods/headers apply only when enabled.
	CORSEnabled bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Defaults returns built-in settings overlaid with environment values.
func Defaults(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Config{Addr: ":8080", LogLevel: "info", Workers: 1}
	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	return cfg
}

// Merge returns base with every non-zero field of over applied on top.
func Merge(base, over Config) Config {
	if over.Addr != "" {
		base.Addr = over.Addr
	}
	if over.ManifestPath != "" {
		base.ManifestPath = over.ManifestPath
	}
	if over.ProjectRoot != "" {
		base.ProjectRoot = over.ProjectRoot
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.Workers > 0 {
		base.Workers = over.Workers
	}
	if over.CORSEnabled {
		base.CORSEnabled = true
	}
	if len(over.CORSOrigins) > 0 {
		base.CORSOrigins = append([]string(nil), over.CORSOrigins...)
	}
	return base
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
