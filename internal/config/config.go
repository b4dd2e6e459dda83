package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"todo-list/internal/repository/sqlite"
)

// Config holds all configuration options for the todo service
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Static      StaticConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	BusyTimeout    time.Duration `env:"TODO_DB_BUSY_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Host string `env:"TODO_SERVER_HOST"`
	Port int    `env:"TODO_SERVER_PORT"`
	Mode string `env:"TODO_SERVER_MODE"`
}

// StaticConfig holds front-end asset configuration
type StaticConfig struct {
	Dir          string `env:"TODO_STATIC_DIR"`
	Prefix       string `env:"TODO_STATIC_PREFIX"`
	IndexFile    string `env:"TODO_STATIC_INDEX"`
	CacheControl string `env:"TODO_STATIC_CACHE_CONTROL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug           bool          `env:"TODO_APP_DEBUG"`
	ShutdownTimeout time.Duration `env:"TODO_APP_SHUTDOWN_TIMEOUT"`
}

// Gin modes accepted by ServerConfig.Mode
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            ".",
			Filename:       "todos.db",
			BusyTimeout:    5 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			Mode: ModeRelease,
		},
		Static: StaticConfig{
			Dir:          "static",
			Prefix:       "/static",
			IndexFile:    "index.html",
			CacheControl: "public, max-age=31536000, immutable",
		},
		Application: ApplicationConfig{
			Debug:           false,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetListenAddr returns the host:port the HTTP server binds to
func (c *Config) GetListenAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// GetIndexPath returns the path of the front-end entry page
func (c *Config) GetIndexPath() string {
	return filepath.Join(c.Static.Dir, c.Static.IndexFile)
}

// EnsureDatabaseDir creates the database directory if it does not exist
func (c *Config) EnsureDatabaseDir() error {
	return os.MkdirAll(c.Database.Dir, os.FileMode(c.Database.DirPermissions))
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_BUSY_TIMEOUT"); timeout != "" {
		c.Database.BusyTimeout = ParseDurationWithFallback(timeout, c.Database.BusyTimeout)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Server configuration
	if host := os.Getenv("TODO_SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("TODO_SERVER_PORT"); port != "" {
		c.Server.Port = ParseIntWithFallback(port, c.Server.Port)
	}
	if mode := os.Getenv("TODO_SERVER_MODE"); mode != "" {
		c.Server.Mode = strings.ToLower(mode)
	}

	// Static configuration
	if dir := os.Getenv("TODO_STATIC_DIR"); dir != "" {
		c.Static.Dir = dir
	}
	if prefix := os.Getenv("TODO_STATIC_PREFIX"); prefix != "" {
		c.Static.Prefix = prefix
	}
	if index := os.Getenv("TODO_STATIC_INDEX"); index != "" {
		c.Static.IndexFile = index
	}
	if cacheControl := os.Getenv("TODO_STATIC_CACHE_CONTROL"); cacheControl != "" {
		c.Static.CacheControl = cacheControl
	}

	// Application configuration
	if debug := os.Getenv("TODO_APP_DEBUG"); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, c.Application.Debug)
	}
	if timeout := os.Getenv("TODO_APP_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Application.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Application.ShutdownTimeout)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if strings.ContainsAny(c.Database.Dir+c.Database.Filename, sqlite.DSNReserved) {
		return &ConfigError{Field: "database.path", Message: "database path cannot contain ? or #"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	switch c.Server.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return &ConfigError{Field: "server.mode", Message: "mode must be one of debug, release, test"}
	}

	// Validate static configuration
	if c.Static.Dir == "" {
		return &ConfigError{Field: "static.dir", Message: "static directory cannot be empty"}
	}
	if !strings.HasPrefix(c.Static.Prefix, "/") || c.Static.Prefix == "/" {
		return &ConfigError{Field: "static.prefix", Message: "static prefix must start with / and name a path below the root"}
	}
	if c.Static.IndexFile == "" {
		return &ConfigError{Field: "static.index_file", Message: "index file cannot be empty"}
	}
	if c.Static.CacheControl == "" {
		return &ConfigError{Field: "static.cache_control", Message: "cache control header cannot be empty"}
	}

	// Validate application configuration
	if c.Application.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "application.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
