package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains ledger store connection settings
type DatabaseConfig struct {
	// URL selects the backend: sqlite://finance.db, sqlite::memory: or postgres://...
	URL                string        `mapstructure:"url"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"`    // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"`    // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`       // seconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`      // startup connection only
	RetryDelay         time.Duration `mapstructure:"retryDelay"`         // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains the access gate settings
type AuthConfig struct {
	Password           string        `mapstructure:"password"`
	PasswordHash       string        `mapstructure:"passwordHash"`
	SessionTTL         time.Duration `mapstructure:"sessionTTL"` // minutes
	LoginRatePerMinute int           `mapstructure:"loginRatePerMinute"`
	CookieSecure       bool          `mapstructure:"cookieSecure"`
}
