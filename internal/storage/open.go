package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/sheikh-saqib/gpa-calculator/internal/config"
	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/file"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/memory"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/postgres"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/sqlite"
)

// Store is a SubjectStore that may hold a connection.
type Store interface {
	interfaces.SubjectStore
	io.Closer
}

// Open returns the store selected by cfg.Store.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return memory.NewSubjectStore(), nil
	case config.StoreFile:
		return file.NewSubjectStore(cfg.FilePath), nil
	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.StoreKey)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorePostgres:
		store, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.StoreKey)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
