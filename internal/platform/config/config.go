package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full process configuration, read once at start-up.
type Config struct {
	Env       string
	Server    Server
	Database  Database
	Auth      Auth
	GenAI     GenAI
	Plan      Plan
	Templates Templates
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Database is empty when the process should run on in-memory stores.
type Database struct {
	URL      string
	MaxConns int
}

// Auth configures verification of tokens minted by the hosted auth provider.
type Auth struct {
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// Enabled reports whether requests must carry a bearer token.
func (a Auth) Enabled() bool { return a.JWTSecret != "" }

// GenAI configures the enrichment backend. An empty APIKey disables enrichment.
type GenAI struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Plan holds the audit feasibility constants.
type Plan struct {
	AvailableHoursPerDay float64
	OpeningClosingHours  float64
	DefaultThemeHours    float64
}

// Templates configures the risk scenario template catalogue.
type Templates struct {
	CacheTTL time.Duration
	Locale   string
}

// IsDevelopment reports whether APP_ENV is development.
func (c Config) IsDevelopment() bool { return c.Env == "development" }

func defaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RISKDESK_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_MAX_CONNS", 25)
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("AUTH_JWT_ISSUER", "")
	v.SetDefault("AUTH_JWT_AUDIENCE", "")
	v.SetDefault("GENAI_API_KEY", "")
	v.SetDefault("GENAI_MODEL", "gemini-2.0-flash")
	v.SetDefault("ENRICHMENT_TIMEOUT", "20s")
	v.SetDefault("PLAN_AVAILABLE_HOURS_PER_DAY", 7)
	v.SetDefault("PLAN_OPENING_CLOSING_HOURS", 2)
	v.SetDefault("PLAN_DEFAULT_THEME_HOURS", 1)
	v.SetDefault("TEMPLATE_CACHE_TTL", "5m")
	v.SetDefault("TEMPLATE_LOCALE", "fr")
}

// Load reads an optional .env file then the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env: v.GetString("APP_ENV"),
		Server: Server{
			Addr:            v.GetString("RISKDESK_ADDR"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: Database{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt("DATABASE_MAX_CONNS"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("AUTH_JWT_SECRET"),
			JWTIssuer:   v.GetString("AUTH_JWT_ISSUER"),
			JWTAudience: v.GetString("AUTH_JWT_AUDIENCE"),
		},
		GenAI: GenAI{
			APIKey:  v.GetString("GENAI_API_KEY"),
			Model:   v.GetString("GENAI_MODEL"),
			Timeout: v.GetDuration("ENRICHMENT_TIMEOUT"),
		},
		Plan: Plan{
			AvailableHoursPerDay: v.GetFloat64("PLAN_AVAILABLE_HOURS_PER_DAY"),
			OpeningClosingHours:  v.GetFloat64("PLAN_OPENING_CLOSING_HOURS"),
			DefaultThemeHours:    v.GetFloat64("PLAN_DEFAULT_THEME_HOURS"),
		},
		Templates: Templates{
			CacheTTL: v.GetDuration("TEMPLATE_CACHE_TTL"),
			Locale:   v.GetString("TEMPLATE_LOCALE"),
		},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Plan.AvailableHoursPerDay <= 0 {
		return errors.New("PLAN_AVAILABLE_HOURS_PER_DAY must be positive")
	}
	if c.Plan.OpeningClosingHours < 0 {
		return errors.New("PLAN_OPENING_CLOSING_HOURS must not be negative")
	}
	if c.Plan.DefaultThemeHours <= 0 {
		return errors.New("PLAN_DEFAULT_THEME_HOURS must be positive")
	}
	if c.Database.MaxConns < 1 {
		return errors.New("DATABASE_MAX_CONNS must be at least 1")
	}
	if c.GenAI.Timeout <= 0 {
		return errors.New("ENRICHMENT_TIMEOUT must be positive")
	}
	if !c.IsDevelopment() && !c.Auth.Enabled() {
		return errors.New("AUTH_JWT_SECRET is required outside development")
	}
	return nil
}
