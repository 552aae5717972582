// Package config loads recipebox settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all recipebox configuration.
type Config struct {
	Addr string `yaml:"addr"`

	// BaseURL is the site the render command fetches recipe JSON from.
	BaseURL string `yaml:"base_url"`

	// Addressing is "path" (/recipes/<slug>) or "hash" (#<slug>).
	Addressing string `yaml:"addressing"`

	RecipesDir string `yaml:"recipes_dir"`
	AssetsDir  string `yaml:"assets_dir"`

	// Template overrides the embedded page template when set.
	Template string `yaml:"template"`

	ImageHeight      int `yaml:"image_height"`
	BuildConcurrency int `yaml:"build_concurrency"`

	Store   StoreConfig   `yaml:"store"`
	CORS    CORSConfig    `yaml:"cors"`
	Logging LoggingConfig `yaml:"logging"`
	Nav     NavConfig     `yaml:"nav"`
}

type StoreConfig struct {
	Kind            string `yaml:"kind"` // dir, firestore
	ProjectID       string `yaml:"project_id"`
	Collection      string `yaml:"collection"`
	CredentialsFile string `yaml:"credentials_file"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type NavConfig struct {
	HomeURL        string `yaml:"home_url"`
	Image          string `yaml:"image"`
	WordmarkAccent string `yaml:"wordmark_accent"`
	Wordmark       string `yaml:"wordmark"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:             ":8080",
		Addressing:       "path",
		RecipesDir:       "recipes",
		AssetsDir:        "images",
		ImageHeight:      500,
		BuildConcurrency: 4,
		Store: StoreConfig{
			Kind:       "dir",
			Collection: "recipes",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Nav: NavConfig{
			HomeURL:        "https://tripnaught.github.io/",
			Image:          "/images/profile-pic.png",
			WordmarkAccent: "trip",
			Wordmark:       "naught",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			cfg.resolvePaths(filepath.Dir(path))
		}
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// resolvePaths makes relative paths in the file relative to the file.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.RecipesDir, &c.AssetsDir, &c.Template, &c.Store.CredentialsFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if addr := os.Getenv("RECIPEBOX_ADDR"); addr != "" {
		c.Addr = addr
	}
	if dir := os.Getenv("RECIPEBOX_RECIPES_DIR"); dir != "" {
		c.RecipesDir = dir
	}
	if kind := os.Getenv("RECIPEBOX_STORE"); kind != "" {
		c.Store.Kind = kind
	}
	if project := os.Getenv("GOOGLE_CLOUD_PROJECT"); project != "" {
		c.Store.ProjectID = project
	}
	if level := os.Getenv("RECIPEBOX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Store.Kind) {
	case "dir":
		if c.RecipesDir == "" {
			return fmt.Errorf("recipes_dir is required for the dir store")
		}
	case "firestore":
		if c.Store.ProjectID == "" {
			return fmt.Errorf("store.project_id is required for the firestore store")
		}
	default:
		return fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}
	if c.ImageHeight <= 0 {
		return fmt.Errorf("image_height must be positive, got %d", c.ImageHeight)
	}
	if c.BuildConcurrency <= 0 {
		c.BuildConcurrency = 1
	}
	return nil
}
