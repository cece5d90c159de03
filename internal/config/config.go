package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Parser   ParserConfig   `yaml:"parser"`
	Ingest   IngestConfig   `yaml:"ingest"`
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

// ParserConfig holds wager-line parsing limits.
type ParserConfig struct {
	MaxJodiNumbers int   `yaml:"max_jodi_numbers" env:"PARSER_MAX_JODI_NUMBERS" env-default:"100"`
	MaxEntryValue  int64 `yaml:"max_entry_value"  env:"PARSER_MAX_ENTRY_VALUE"  env-default:"100000"`
}

// IngestConfig holds submission processing settings.
type IngestConfig struct {
	// DefaultMarket is used when a submission names no market.
	DefaultMarket string `yaml:"default_market" env:"INGEST_DEFAULT_MARKET" env-default:"T.O"`

	// AutoCreateCustomers creates unknown customers on first submission
	// instead of rejecting the batch. Defaults to true in Load; an
	// env-default tag cannot carry a bool default because cleanenv treats
	// an explicit false as unset and would re-apply the default over it.
	AutoCreateCustomers bool `yaml:"auto_create_customers" env:"INGEST_AUTO_CREATE_CUSTOMERS"`
}
