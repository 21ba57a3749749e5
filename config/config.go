package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string
	Env         string
	Timezone    string
	DBPath      string
	LogLevel    string
	LogFormat   string
	FrontendURL string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	BodyLimit         string
	UploadMaxBytes    int64

	TablesPath      string
	DiagnosisSeed   int64
	WeatherCacheTTL time.Duration

	KBAllowedDomains  []string
	KBMaxBytesPerPage int64

	// DotEnvLoaded reports whether a .env file was read. The caller logs it
	// once the logger exists.
	DotEnvLoaded bool
}

func (c AppConfig) IsProduction() bool { return strings.EqualFold(c.Env, "production") }

var defaults = map[string]any{
	"port":                  "5000",
	"app_env":               "development",
	"tz":                    "Asia/Kolkata",
	"db_path":               "cropadvisor.db",
	"log_level":             "info",
	"log_format":            "json",
	"frontend_url":          "http://localhost:3000",
	"rate_limit_requests":   100,
	"rate_limit_window":     "15m",
	"body_limit":            "10M",
	"upload_max_bytes":      10 << 20,
	"tables_path":           "",
	"diagnosis_seed":        0,
	"weather_cache_ttl":     "10m",
	"kb_allowed_domains":    "",
	"kb_max_bytes_per_page": 1500000,
}

// NewViper returns a viper instance with the defaults table and environment
// lookup in place. CLI flags may be bound on top before calling FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()
	return v
}

// Load reads an optional .env file (missing is fine) and resolves the
// configuration from the environment.
func Load() (AppConfig, error) { return LoadWith(NewViper()) }

// LoadWith is Load over a caller-prepared viper, typically one with CLI
// flags bound.
func LoadWith(v *viper.Viper) (AppConfig, error) {
	loaded, err := loadDotEnv()
	if err != nil {
		return AppConfig{}, err
	}
	cfg, err := FromViper(v)
	cfg.DotEnvLoaded = loaded
	return cfg, err
}

func loadDotEnv(files ...string) (bool, error) {
	err := godotenv.Load(files...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("read .env: %w", err)
	}
}

func FromViper(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		Port:              v.GetString("port"),
		Env:               v.GetString("app_env"),
		Timezone:          v.GetString("tz"),
		DBPath:            v.GetString("db_path"),
		LogLevel:          strings.ToLower(v.GetString("log_level")),
		LogFormat:         strings.ToLower(v.GetString("log_format")),
		FrontendURL:       v.GetString("frontend_url"),
		RateLimitRequests: v.GetInt("rate_limit_requests"),
		RateLimitWindow:   v.GetDuration("rate_limit_window"),
		BodyLimit:         v.GetString("body_limit"),
		UploadMaxBytes:    v.GetInt64("upload_max_bytes"),
		TablesPath:        v.GetString("tables_path"),
		DiagnosisSeed:     v.GetInt64("diagnosis_seed"),
		WeatherCacheTTL:   v.GetDuration("weather_cache_ttl"),
		KBAllowedDomains:  splitHosts(v.GetString("kb_allowed_domains")),
		KBMaxBytesPerPage: v.GetInt64("kb_max_bytes_per_page"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func splitHosts(s string) []string {
	var out []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			out = append(out, h)
		}
	}
	return out
}

func (c AppConfig) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port: %q", c.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'console'", c.LogFormat)
	}

	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("rate_limit_requests must be positive, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be positive, got %s", c.RateLimitWindow)
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("upload_max_bytes must be positive, got %d", c.UploadMaxBytes)
	}
	if c.KBMaxBytesPerPage <= 0 {
		return fmt.Errorf("kb_max_bytes_per_page must be positive, got %d", c.KBMaxBytesPerPage)
	}
	if c.WeatherCacheTTL < 0 {
		return fmt.Errorf("weather_cache_ttl must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	return nil
}
