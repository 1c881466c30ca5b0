// Package config holds the pipeline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete pipeline configuration. Zero config is fine:
// Default() points at the public feeds and the user cache dir.
type Config struct {
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Reference ReferenceConfig `yaml:"reference"`
	Wiki      WikiConfig      `yaml:"wiki"`
}

// TelemetryConfig covers the live state-vector feed.
type TelemetryConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ReferenceConfig covers the airport dataset and its cache file.
type ReferenceConfig struct {
	URL            string `yaml:"url"`
	CacheDir       string `yaml:"cache_dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// WikiConfig covers the page-summary endpoint.
type WikiConfig struct {
	URLStem        string `yaml:"url_stem"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (t TelemetryConfig)Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}
func (r ReferenceConfig)Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}
func (w WikiConfig)Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

func Default() Config {
	cacheDir,err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return Config{
		Telemetry: TelemetryConfig{
			URL:            "https://opensky-network.org/api/states/all",
			TimeoutSeconds: 20,
		},
		Reference: ReferenceConfig{
			URL:            "https://davidmegginson.github.io/ourairports-data/airports.csv",
			CacheDir:       filepath.Join(cacheDir, "airtrack"),
			TimeoutSeconds: 60,
		},
		Wiki: WikiConfig{
			URLStem:        "https://en.wikipedia.org/api/rest_v1/page/summary/",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads a yaml file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data,err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %v", path, err)
	}

	return cfg, nil
}

func (c *Config)Validate() error {
	if c.Telemetry.URL == "" {
		return fmt.Errorf("telemetry.url must not be empty")
	}
	if c.Telemetry.TimeoutSeconds <= 0 {
		return fmt.Errorf("telemetry.timeout_seconds must be positive")
	}
	if c.Reference.URL == "" {
		return fmt.Errorf("reference.url must not be empty")
	}
	if c.Reference.CacheDir == "" {
		return fmt.Errorf("reference.cache_dir must not be empty")
	}
	if c.Reference.TimeoutSeconds <= 0 {
		return fmt.Errorf("reference.timeout_seconds must be positive")
	}
	if c.Wiki.URLStem == "" {
		return fmt.Errorf("wiki.url_stem must not be empty")
	}
	if c.Wiki.TimeoutSeconds <= 0 {
		return fmt.Errorf("wiki.timeout_seconds must be positive")
	}
	return nil
}
