package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Odds       OddsConfig       `mapstructure:"odds"`
	Betting    BettingConfig    `mapstructure:"betting"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Reconciler ReconcilerConfig `mapstructure:"reconciler"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// OddsConfig configures the external odds/scores feed.
type OddsConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Region  string        `mapstructure:"region"`
	Sports  []string      `mapstructure:"sports"` // tracked sport keys, e.g. soccer_epl
	Timeout time.Duration `mapstructure:"timeout"`
}

// BettingConfig holds the ledger business constants.
type BettingConfig struct {
	StartBalance    float64 `mapstructure:"start_balance"`
	MinStake        float64 `mapstructure:"min_stake"`
	CashoutMin      float64 `mapstructure:"cashout_min"` // lower bound of the cashout discount band
	CashoutMax      float64 `mapstructure:"cashout_max"`
	BetHistoryLimit int     `mapstructure:"bet_history_limit"`
	LeaderboardSize int     `mapstructure:"leaderboard_size"`
}

// CacheConfig controls the in-memory event snapshot.
type CacheConfig struct {
	EventsTTL time.Duration `mapstructure:"events_ttl"`
}

// ReconcilerConfig controls the background settlement loop.
type ReconcilerConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	LookbackDays int           `mapstructure:"lookback_days"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BM_ (BetMachine).
// Nested keys use underscore: BM_DATABASE_HOST, BM_ODDS_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "betmachine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("odds.base_url", "https://api.the-odds-api.com/v4")
	v.SetDefault("odds.api_key", "")
	v.SetDefault("odds.region", "eu")
	v.SetDefault("odds.sports", []string{
		"soccer_epl",
		"soccer_spain_la_liga",
		"soccer_uefa_champs_league",
		"basketball_nba",
		"tennis_atp_french_open",
		"icehockey_nhl",
		"mma_mixed_martial_arts",
	})
	v.SetDefault("odds.timeout", "15s")
	v.SetDefault("betting.start_balance", 1000)
	v.SetDefault("betting.min_stake", 10)
	v.SetDefault("betting.cashout_min", 0.70)
	v.SetDefault("betting.cashout_max", 0.85)
	v.SetDefault("betting.bet_history_limit", 20)
	v.SetDefault("betting.leaderboard_size", 20)
	v.SetDefault("cache.events_ttl", "300s")
	v.SetDefault("reconciler.interval", "600s")
	v.SetDefault("reconciler.lookback_days", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BM_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
