package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	// Connection. DBUrl wins over the discrete fields when set.
	DBUrl      string `mapstructure:"database_url"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	DBMaxOpenConns int `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns int `mapstructure:"db_max_idle_conns"`

	Store string `mapstructure:"store"`

	ServerPort  string   `mapstructure:"server_port"`
	JWTSecret   string   `mapstructure:"jwt_secret"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"database_url":      "",
	"db_host":           "localhost",
	"db_port":           "5432",
	"db_name":           "",
	"db_user":           "",
	"db_password":       "",
	"db_sslmode":        "disable",
	"db_max_open_conns": 10,
	"db_max_idle_conns": 5,
	"store":             StorePostgres,
	"server_port":       "8080",
	"jwt_secret":        "",
	"cors_origins":      []string{},
	"log_level":         "info",
}

// Load reads, in increasing priority: defaults, the YAML file at
// configPath (optional), a .env file in the working directory (optional)
// and the process environment.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Every key is defaulted above, so AutomaticEnv sees all of them,
	// e.g. db_password <- DB_PASSWORD.
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory:
		return nil
	case StorePostgres:
	default:
		return fmt.Errorf("store must be %q or %q, got %q", StorePostgres, StoreMemory, c.Store)
	}

	if c.DBUrl != "" {
		return nil
	}
	if c.DBName == "" {
		return fmt.Errorf("db_name is required when database_url is not set")
	}
	if c.DBUser == "" {
		return fmt.Errorf("db_user is required when database_url is not set")
	}

	return nil
}

// DSN returns the Postgres connection URL.
func (c *Config) DSN() string {
	if c.DBUrl != "" {
		return c.DBUrl
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}

	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("CLIENTDIR_DEV_MODE") == "1"
}
