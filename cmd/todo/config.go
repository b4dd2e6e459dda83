package main

import (
	"os"

	"todo-list/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from TODO_ENV
func getEnvironment() Environment {
	switch os.Getenv("TODO_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}

// ServerMode returns the gin mode used in this environment
func (e Environment) ServerMode() string {
	switch e {
	case Development:
		return config.ModeDebug
	case Testing:
		return config.ModeTest
	default:
		return config.ModeRelease
	}
}

// defaultsFor returns the configuration defaults for env. TODO_* variables and flags
// are applied on top of these.
func defaultsFor(env Environment) *config.Config {
	cfg := config.NewConfig()
	cfg.Server.Mode = env.ServerMode()
	if env == Development {
		cfg.Application.Debug = true
	}
	return cfg
}
