package store

import (
	"fmt"

	"flashdeck/internal/config"
	"flashdeck/internal/domain"
)

// New selects and initializes the storage backend named in configuration.
func New(cfg *config.Config) (domain.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.Storage.DataDir)
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Storage.SQLitePath)
	case config.BackendRedis:
		client, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
