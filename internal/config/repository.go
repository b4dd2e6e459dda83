package config

import (
	"fmt"

	"todo-list/internal/repository/sqlite"
)

// RepositoryOptions maps database configuration onto storage open options
func RepositoryOptions(config *Config) sqlite.Options {
	return sqlite.Options{BusyTimeout: config.Database.BusyTimeout}
}

// CreateRepository creates the storage accessor for the configured database file,
// creating the directory and the todos table when missing
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := config.EnsureDatabaseDir(); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), RepositoryOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// OpenRepository opens the configured database file without creating the schema
func OpenRepository(config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.OpenWithOptions(config.GetDatabasePath(), RepositoryOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return repo, nil
}
