package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition parameters shared by the review
// scheduler and the session selector.
type SRSConfig struct {
	// MaxIntervalDays caps the forgetting-curve interval. The exponential
	// tier doubles on every review, so an uncapped interval quickly exceeds
	// any useful horizon.
	MaxIntervalDays int `yaml:"max_interval_days" env:"SRS_MAX_INTERVAL" env-default:"365"`

	// Timezone defines the local-day boundary used for "seen today"
	// exclusions and daily statistics (IANA name, e.g. "Asia/Shanghai").
	Timezone string `yaml:"timezone" env:"SRS_TIMEZONE" env-default:"UTC"`

	// MaxSessionSize bounds the count argument of a single selection call.
	MaxSessionSize int `yaml:"max_session_size" env:"SRS_MAX_SESSION_SIZE" env-default:"200"`
}
