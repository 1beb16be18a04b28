package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultURL is the embedded database file used when no URL is configured
const DefaultURL = "sqlite://finance.db"

// sqliteBusyTimeoutMs keeps concurrent writers from failing immediately on a locked file
const sqliteBusyTimeoutMs = 5000

// ErrUnsupportedURL is returned for connection strings of an unknown backend
var ErrUnsupportedURL = errors.New("unsupported database url")

// Config represents database configuration
type Config struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	LogLevel           string
	RetryAttempts      int
	RetryDelay         time.Duration
	SlowQueryThreshold time.Duration
	MonitorInterval    time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		URL:                DefaultURL,
		MaxOpenConns:       4,
		MaxIdleConns:       2,
		ConnMaxLifetime:    30 * time.Minute,
		ConnMaxIdleTime:    15 * time.Minute,
		QueryTimeout:       5 * time.Second,
		LogLevel:           "warn",
		RetryAttempts:      3,
		RetryDelay:         time.Second,
		SlowQueryThreshold: 200 * time.Millisecond,
		MonitorInterval:    30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, _, err := c.Dialector(); err != nil {
		return err
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// Dialector selects the gorm dialector for the configured URL.
// It also returns the driver name.
func (c *Config) Dialector() (gorm.Dialector, string, error) {
	raw := strings.TrimSpace(c.URL)
	if raw == "" {
		raw = DefaultURL
	}

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return postgres.Open(raw), DriverPostgres, nil
	case strings.HasPrefix(raw, "sqlite:"):
		return sqlite.Open(sqliteDSN(raw)), DriverSQLite, nil
	case strings.HasPrefix(raw, "file:"):
		return sqlite.Open(raw), DriverSQLite, nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedURL, Redact(raw))
	}
}

// IsMemory reports whether the URL names a private in-memory database
func (c *Config) IsMemory() bool {
	return strings.Contains(c.URL, ":memory:")
}

// sqliteDSN converts a sqlite URL into a driver DSN. Slashes follow the
// SQLAlchemy convention: sqlite:///finance.db is relative to the working
// directory and sqlite:////var/lib/finance.db is absolute. sqlite://finance.db
// and sqlite:finance.db are relative as well.
func sqliteDSN(raw string) string {
	path := strings.TrimPrefix(raw, "sqlite:")

	switch {
	case strings.HasPrefix(path, "///"):
		path = path[3:]
	case strings.HasPrefix(path, "//"):
		path = path[2:]
	}

	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	if strings.Contains(path, "?") {
		return path
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, sqliteBusyTimeoutMs)
}

// Redact hides the password of a connection URL for logging
func Redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}

// WithURL returns a copy of the config pointing at another database
func (c *Config) WithURL(raw string) *Config {
	newConfig := *c
	newConfig.URL = raw
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}
