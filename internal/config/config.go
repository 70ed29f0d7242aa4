package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from the process
// environment, optionally pre-populated from a .env file.
type Config struct {
	Port         string `env:"PORT"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DBMaxConns   int    `env:"DB_MAX_CONNS"`
	SkipMigrate  bool   `env:"SKIP_MIGRATIONS"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	UploadDir    string `env:"UPLOAD_DIR"`
	PublicURL    string `env:"PUBLIC_BASE_URL"`
	CookieSecure bool   `env:"COOKIE_SECURE"`

	// SessionSecret signs the session cookie. There is no default.
	SessionSecret string `env:"SESSION_SECRET"`

	CORSOrigins        []string `env:"CORS_ORIGINS"`
	LoginRatePerMinute int      `env:"LOGIN_RATE_PER_MINUTE"`

	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For header is
	// believed. Empty means the client IP is always the socket peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`

	// Optional bootstrap admin, created at startup when both are set.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseDBPassword string `env:"SUPABASE_DB_PASSWORD"`
	SupabaseDBURL      string `env:"SUPABASE_DB_URL"`
}

// Load reads an optional .env file and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Validate reports settings the API server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if len(c.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 characters")
	}
	for _, p := range c.TrustedProxies {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
		}
	}
	return nil
}

// SupabaseDSN returns the Supabase Postgres connection string. An explicit
// SUPABASE_DB_URL wins; otherwise it is derived from the project URL and the
// database password.
func (c *Config) SupabaseDSN() (string, error) {
	if c.SupabaseDBURL != "" {
		return c.SupabaseDBURL, nil
	}
	if c.SupabaseURL == "" || c.SupabaseDBPassword == "" {
		return "", errors.New("set SUPABASE_DB_URL, or SUPABASE_URL and SUPABASE_DB_PASSWORD")
	}

	u, err := url.Parse(c.SupabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse SUPABASE_URL: %w", err)
	}
	ref, _, ok := strings.Cut(u.Hostname(), ".")
	if !ok || ref == "" {
		return "", fmt.Errorf("SUPABASE_URL %q has no project ref", c.SupabaseURL)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword("postgres", c.SupabaseDBPassword),
		Host:     "db." + ref + ".supabase.co:5432",
		Path:     "/postgres",
		RawQuery: "sslmode=require",
	}
	return dsn.String(), nil
}

func applyDefaults(c *Config) {
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.DBMaxConns <= 0 {
		c.DBMaxConns = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}
	if c.PublicURL == "" {
		c.PublicURL = "http://localhost:" + c.Port
	}
	c.PublicURL = strings.TrimRight(c.PublicURL, "/")

	c.CORSOrigins = cleanList(c.CORSOrigins)
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"http://localhost:5173"}
	}
	c.TrustedProxies = cleanList(c.TrustedProxies)

	if c.LoginRatePerMinute <= 0 {
		c.LoginRatePerMinute = 5
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-1.5-flash"
	}
}

// cleanList trims entries and drops blanks. A list with nothing left is nil.
func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
