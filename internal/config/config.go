// Package config loads server settings from MEETNMEAL_* environment
// variables, then lets command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Config holds every server setting.
type Config struct {
	Addr   string `env:"MEETNMEAL_ADDR" envDefault:":8080"`
	DBPath string `env:"MEETNMEAL_DB_PATH" envDefault:"./data/meetnmeal.db"`

	// Catalog seed files, imported on startup when set.
	RestaurantsCSV string `env:"MEETNMEAL_RESTAURANTS_CSV"`
	LocationsCSV   string `env:"MEETNMEAL_LOCATIONS_CSV"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MEETNMEAL_LOG_FORMAT" envDefault:"text"`

	// TokenSecret signs member tokens. Empty picks a random secret, so tokens
	// do not survive a restart.
	TokenSecret   string        `env:"MEETNMEAL_TOKEN_SECRET"`
	TokenTTL      time.Duration `env:"MEETNMEAL_TOKEN_TTL" envDefault:"12h"`
	RequireTokens bool          `env:"MEETNMEAL_REQUIRE_TOKENS" envDefault:"false"`

	CORSOrigin string `env:"MEETNMEAL_CORS_ORIGIN" envDefault:"*"`

	ComputeTimeout time.Duration `env:"MEETNMEAL_COMPUTE_TIMEOUT" envDefault:"30s"`
	TopK           int           `env:"MEETNMEAL_TOP_K" envDefault:"10"`
	Candidates     int           `env:"MEETNMEAL_CANDIDATES" envDefault:"30"`
	MaxDistanceKm  float64       `env:"MEETNMEAL_MAX_DISTANCE_KM" envDefault:"10"`

	SessionTTL    time.Duration `env:"MEETNMEAL_SESSION_TTL" envDefault:"10m"`
	SweepInterval time.Duration `env:"MEETNMEAL_SWEEP_INTERVAL" envDefault:"30s"`
	IdleGrace     int           `env:"MEETNMEAL_IDLE_GRACE" envDefault:"10"`
	MaxGrace      int           `env:"MEETNMEAL_MAX_GRACE" envDefault:"300"`

	QueueSize    int           `env:"MEETNMEAL_QUEUE_SIZE" envDefault:"16"`
	PingInterval time.Duration `env:"MEETNMEAL_PING_INTERVAL" envDefault:"15s"`

	OTelEndpoint    string        `env:"MEETNMEAL_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"MEETNMEAL_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the environment, applies flags from args and validates the
// result. It returns pflag.ErrHelp when -h or --help was given.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := pflag.NewFlagSet("meetnmeal", pflag.ContinueOnError)
	cfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlags registers one flag per setting, defaulting to the value already
// loaded from the environment.
func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite database path")
	fs.StringVar(&c.RestaurantsCSV, "restaurants-csv", c.RestaurantsCSV, "restaurant catalog CSV to import on startup")
	fs.StringVar(&c.LocationsCSV, "locations-csv", c.LocationsCSV, "area coordinates CSV to import on startup")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.TokenSecret, "token-secret", c.TokenSecret, "member token signing secret")
	fs.DurationVar(&c.TokenTTL, "token-ttl", c.TokenTTL, "member token lifetime")
	fs.BoolVar(&c.RequireTokens, "require-tokens", c.RequireTokens, "reject member requests without a token")
	fs.StringVar(&c.CORSOrigin, "cors-origin", c.CORSOrigin, "allowed CORS and WebSocket origin")
	fs.DurationVar(&c.ComputeTimeout, "compute-timeout", c.ComputeTimeout, "recommendation engine timeout")
	fs.IntVar(&c.TopK, "top-k", c.TopK, "recommendations returned per session")
	fs.IntVar(&c.Candidates, "candidates", c.Candidates, "brands considered before distance ranking")
	fs.Float64Var(&c.MaxDistanceKm, "max-distance-km", c.MaxDistanceKm, "drop branches farther than this from the group")
	fs.DurationVar(&c.SessionTTL, "session-ttl", c.SessionTTL, "idle time before a session is wound down")
	fs.DurationVar(&c.SweepInterval, "sweep-interval", c.SweepInterval, "how often idle sessions are looked for")
	fs.IntVar(&c.IdleGrace, "idle-grace", c.IdleGrace, "closing countdown in seconds for idle sessions")
	fs.IntVar(&c.MaxGrace, "max-grace", c.MaxGrace, "largest closing countdown a client may request")
	fs.IntVar(&c.QueueSize, "queue-size", c.QueueSize, "pending push events per member connection")
	fs.DurationVar(&c.PingInterval, "ping-interval", c.PingInterval, "WebSocket keep-alive interval")
	fs.StringVar(&c.OTelEndpoint, "otel-endpoint", c.OTelEndpoint, "OTLP/HTTP trace endpoint; empty disables tracing")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown limit")
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Addr != "", "addr must not be empty")
	check(c.DBPath != "", "db path must not be empty")
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		check(false, "unknown log level %q", c.LogLevel)
	}
	check(c.LogFormat == "text" || c.LogFormat == "json", "log format must be text or json, got %q", c.LogFormat)
	check(c.TokenTTL > 0, "token ttl must be positive")
	check(c.ComputeTimeout > 0, "compute timeout must be positive")
	check(c.TopK > 0, "top-k must be positive")
	check(c.Candidates >= c.TopK, "candidates (%d) must be at least top-k (%d)", c.Candidates, c.TopK)
	check(c.MaxDistanceKm > 0, "max distance must be positive")
	check(c.SessionTTL > 0, "session ttl must be positive")
	check(c.SweepInterval > 0, "sweep interval must be positive")
	check(c.MaxGrace > 0, "max grace must be positive")
	check(c.IdleGrace >= 0 && c.IdleGrace <= c.MaxGrace, "idle grace must be in [0, %d]", c.MaxGrace)
	check(c.QueueSize > 0, "queue size must be positive")
	check(c.PingInterval > 0, "ping interval must be positive")
	check(c.ShutdownTimeout > 0, "shutdown timeout must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
