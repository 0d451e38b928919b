package sitegen

import (
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Config holds all build and serve settings for a site. It is resolved once
// at startup and passed explicitly to everything that needs it.
type Config struct {
	Name          string // Site name (default "Engineering Blog")
	URL           string // Canonical base URL without trailing slash (default "http://localhost:3000")
	Description   string // Site description for meta tags and RSS
	TwitterHandle string // Twitter site handle, e.g. "@example"
	Locale        string // OpenGraph locale (default "en_US")
	LogoPath      string // Path of the site logo below the base URL (default "/logo.png")
	BasePath      string // Prefix for in-page links and assets when hosted under a sub-path

	ContentDir  string // Content root holding content/ and data/ (default "public")
	OutputDir   string // Static export destination (default "out")
	Addr        string // Preview server listen address (default ":3000")
	CacheTTL    time.Duration
	Concurrency int // Export workers (default 8)
}

const defaultDescription = "Insights on technology, product development, and engineering practice."

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Engineering Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Description == "" {
		c.Description = defaultDescription
	}
	if c.Locale == "" {
		c.Locale = "en_US"
	}
	if c.LogoPath == "" {
		c.LogoPath = "/logo.png"
	}
	if !strings.HasPrefix(c.LogoPath, "/") {
		c.LogoPath = "/" + c.LogoPath
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.ContentDir == "" {
		c.ContentDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
}

// LogoURL is the absolute URL of the site logo, used as the fallback
// preview image and as the publisher logo.
func (c Config) LogoURL() string {
	p := c.LogoPath
	if p == "" {
		p = "/logo.png"
	}
	return AssetURL(strings.TrimRight(c.URL, "/"), p)
}

// ConfigFromEnv builds a Config from SITE_* and related environment
// variables. Unset values fall back to defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		Name:          os.Getenv("SITE_NAME"),
		URL:           os.Getenv("SITE_URL"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		TwitterHandle: os.Getenv("SITE_TWITTER"),
		Locale:        EnvOr("SITE_LOCALE", "en_US"),
		LogoPath:      os.Getenv("SITE_LOGO"),
		BasePath:      os.Getenv("SITE_BASE_PATH"),
		ContentDir:    os.Getenv("CONTENT_DIR"),
		OutputDir:     os.Getenv("OUTPUT_DIR"),
		Addr:          os.Getenv("ADDR"),
	}
	if ttl, err := time.ParseDuration(os.Getenv("CONTENT_CACHE_TTL")); err == nil {
		cfg.CacheTTL = ttl
	}
	cfg.setDefaults()
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithStore replaces the content store, e.g. with one backed by an fs.FS.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithLogger sets the logger used by the exporter, checker and server.
func WithLogger(l echo.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
