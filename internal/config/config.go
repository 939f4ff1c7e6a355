package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile, when set, duplicates log output to a size-rotated file.
	LogFile string `mapstructure:"log_file"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Path is the SQLite database file, or ":memory:" for an ephemeral
	// instance (used by tests).
	Path string `mapstructure:"path" validate:"required"`

	// BusyTimeoutMS bounds how long a contended write waits before the
	// engine reports it as failed.
	BusyTimeoutMS int `mapstructure:"busy_timeout_ms" validate:"gte=0"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// TokenSecret is the static prefix of every issued bearer token.
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=8"`

	// BcryptCost selects the password hashing cost; zero means the
	// bcrypt default.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}
