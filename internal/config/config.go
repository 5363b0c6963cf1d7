package config

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr          = ":8080"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type HTTPConfig struct {
	Addr                 string        `yaml:"addr"`
	ReadHeaderTimeoutRaw string        `yaml:"read_header_timeout"`
	ShutdownTimeoutRaw   string        `yaml:"shutdown_timeout"`
	ReadHeaderTimeout    time.Duration `yaml:"-"`
	ShutdownTimeout      time.Duration `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MinConns           int           `yaml:"min_conns"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
}

type Config struct {
	HTTP *HTTPConfig    `yaml:"http"`
	Log  LogConfig      `yaml:"log"`
	DB   DatabaseConfig `yaml:"database"`
}

func (c Config) HTTPAddr() string {
	if c.HTTP == nil || c.HTTP.Addr == "" {
		return defaultHTTPAddr
	}
	return c.HTTP.Addr
}

func (c Config) ReadHeaderTimeout() time.Duration {
	if c.HTTP == nil || c.HTTP.ReadHeaderTimeout == 0 {
		return defaultReadHeaderTimeout
	}
	return c.HTTP.ReadHeaderTimeout
}

func (c Config) ShutdownTimeout() time.Duration {
	if c.HTTP == nil || c.HTTP.ShutdownTimeout == 0 {
		return defaultShutdownTimeout
	}
	return c.HTTP.ShutdownTimeout
}

// SlogLevel maps log.level onto slog; unknown values fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConnString builds a pgx connection URL with escaped credentials.
func (db DatabaseConfig) ConnString() string {
	host := db.Host
	if host == "" {
		host = "localhost"
	}

	port := db.Port
	if port == 0 {
		port = 5432
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + db.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

func load(path string) (*Config, error) {
	// #nosec G304 -- config file path is provided via command line flag
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &Config{}, fmt.Errorf("unmarshal config yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return &Config{}, err
	}

	return cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.HTTP != nil {
		timeout, err := parseDurationAllowEmpty(c.HTTP.ReadHeaderTimeoutRaw)
		if err != nil {
			return fmt.Errorf("http.read_header_timeout: %w", err)
		}
		c.HTTP.ReadHeaderTimeout = timeout

		shutdown, err := parseDurationAllowEmpty(c.HTTP.ShutdownTimeoutRaw)
		if err != nil {
			return fmt.Errorf("http.shutdown_timeout: %w", err)
		}
		c.HTTP.ShutdownTimeout = shutdown
	}

	if c.DB.User == "" || c.DB.Password == "" {
		return fmt.Errorf("database user and password must be set in config")
	}
	if c.DB.Name == "" {
		return fmt.Errorf("database name must be set in config")
	}
	if c.DB.MaxOpenConns < 0 || c.DB.MinConns < 0 {
		return fmt.Errorf("database.max_open_conns and database.min_conns must not be negative")
	}
	if c.DB.MaxOpenConns > 0 && c.DB.MinConns > c.DB.MaxOpenConns {
		return fmt.Errorf("database.min_conns (%d) exceeds database.max_open_conns (%d)", c.DB.MinConns, c.DB.MaxOpenConns)
	}

	lifetime, err := parseDurationAllowEmpty(c.DB.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("database.conn_max_lifetime: %w", err)
	}
	c.DB.ConnMaxLifetime = lifetime

	idle, err := parseDurationAllowEmpty(c.DB.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("database.conn_max_idle_time: %w", err)
	}
	c.DB.ConnMaxIdleTime = idle

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// ParseConfig reads the -config flag, falling back to CONFIG_PATH.
func ParseConfig() (*Config, error) {
	configPath := flag.String("config", "", "Path to config file")

	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	return load(path)
}
