// Package config loads the application configuration from file, environment
// and defaults into one immutable struct that is injected into the resolver
// and provider adapters at construction time.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Placeholder values that count as "no API key configured". A provider with
// no real key is disabled rather than failing requests.
var placeholderKeys = map[string]bool{
	"":                  true,
	"changeme":          true,
	"your-api-key-here": true,
}

// ProviderConfig holds the per-provider settings.
type ProviderConfig struct {
	APIKey string
	// BaseURL overrides the provider endpoint; used by tests and proxies.
	BaseURL string
}

// Enabled reports whether the provider has a usable API key.
func (p ProviderConfig) Enabled() bool {
	return !placeholderKeys[strings.TrimSpace(p.APIKey)]
}

// Config is the complete application configuration. Built once by Load and
// treated as immutable afterwards.
type Config struct {
	Listen    string
	Debug     bool
	UserAgent string

	CacheBackend string // "memory" or "sqlite"
	CacheFile    string
	CacheTTL     time.Duration

	ResolverTimeout time.Duration

	// InsecureSkipVerify relaxes TLS verification; honored only with Debug.
	InsecureSkipVerify bool

	OMDB        ProviderConfig
	GoogleBooks ProviderConfig
	Discogs     ProviderConfig
	ComicVine   ProviderConfig
}

func setDefaults() {
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("debug", false)
	viper.SetDefault("user_agent", "calliope/1.0 (+https://github.com/lepinkainen/calliope)")

	viper.SetDefault("cache.backend", "sqlite")
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "24h")

	viper.SetDefault("resolver.timeout", "15s")
}

func bindEnv() {
	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"omdb.api_key":        "OMDB_API_KEY",
		"googlebooks.api_key": "GOOGLE_BOOKS_API_KEY",
		"discogs.api_key":     "DISCOGS_API_TOKEN",
		"comicvine.api_key":   "COMICVINE_API_KEY",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			slog.Error("Failed to bind environment variable", "key", key, "error", err)
		}
	}
}

// Load reads configuration from a config file, environment variables and
// defaults. path may be empty, in which case config.yaml in the working
// directory is tried. A missing config file is not an error.
func Load(path string) (*Config, error) {
	setDefaults()
	bindEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			slog.Debug("Config file not found, using defaults and environment")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper()
}

// FromViper builds a Config from whatever is currently set in viper.
// Split out from Load so tests can seed viper directly.
func FromViper() (*Config, error) {
	cacheTTL, err := time.ParseDuration(viper.GetString("cache.ttl"))
	if err != nil {
		slog.Warn("Invalid cache TTL, using default", "ttl", viper.GetString("cache.ttl"), "error", err)
		cacheTTL = 24 * time.Hour
	}

	resolverTimeout, err := time.ParseDuration(viper.GetString("resolver.timeout"))
	if err != nil {
		slog.Warn("Invalid resolver timeout, using default", "timeout", viper.GetString("resolver.timeout"), "error", err)
		resolverTimeout = 15 * time.Second
	}

	cfg := &Config{
		Listen:             viper.GetString("listen"),
		Debug:              viper.GetBool("debug"),
		UserAgent:          viper.GetString("user_agent"),
		CacheBackend:       viper.GetString("cache.backend"),
		CacheFile:          viper.GetString("cache.dbfile"),
		CacheTTL:           cacheTTL,
		ResolverTimeout:    resolverTimeout,
		InsecureSkipVerify: viper.GetBool("insecure_skip_verify"),
		OMDB: ProviderConfig{
			APIKey:  viper.GetString("omdb.api_key"),
			BaseURL: viper.GetString("omdb.base_url"),
		},
		GoogleBooks: ProviderConfig{
			APIKey:  viper.GetString("googlebooks.api_key"),
			BaseURL: viper.GetString("googlebooks.base_url"),
		},
		Discogs: ProviderConfig{
			APIKey:  viper.GetString("discogs.api_key"),
			BaseURL: viper.GetString("discogs.base_url"),
		},
		ComicVine: ProviderConfig{
			APIKey:  viper.GetString("comicvine.api_key"),
			BaseURL: viper.GetString("comicvine.base_url"),
		},
	}

	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "sqlite" {
		return nil, fmt.Errorf("invalid cache backend %q (want memory or sqlite)", cfg.CacheBackend)
	}

	return cfg, nil
}

// defaultConfigFile mirrors the viper defaults in the on-disk layout.
type defaultConfigFile struct {
	Listen    string `yaml:"listen"`
	Debug     bool   `yaml:"debug"`
	UserAgent string `yaml:"user_agent"`
	Cache     struct {
		Backend string `yaml:"backend"`
		DBFile  string `yaml:"dbfile"`
		TTL     string `yaml:"ttl"`
	} `yaml:"cache"`
	Resolver struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"resolver"`
	OMDB        map[string]string `yaml:"omdb"`
	GoogleBooks map[string]string `yaml:"googlebooks"`
	Discogs     map[string]string `yaml:"discogs"`
	ComicVine   map[string]string `yaml:"comicvine"`
}

// WriteDefault writes a starter config to path. Fails if the file exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	var def defaultConfigFile
	def.Listen = ":8080"
	def.UserAgent = "calliope/1.0 (+https://github.com/lepinkainen/calliope)"
	def.Cache.Backend = "sqlite"
	def.Cache.DBFile = "./cache.db"
	def.Cache.TTL = "24h"
	def.Resolver.Timeout = "15s"
	def.OMDB = map[string]string{"api_key": "changeme"}
	def.GoogleBooks = map[string]string{"api_key": "changeme"}
	def.Discogs = map[string]string{"api_key": "changeme"}
	def.ComicVine = map[string]string{"api_key": "changeme"}

	data, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("Wrote default config", "path", path)
	return nil
}
