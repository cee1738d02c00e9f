package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/gpa-calculator/internal/config"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/file"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/memory"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage/sqlite"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.SubjectStore{}, store)

	store, err = Open(ctx, config.Config{Store: config.StoreFile, FilePath: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &file.SubjectStore{}, store)

	store, err = Open(ctx, config.Config{Store: config.StoreSQLite, SQLitePath: filepath.Join(dir, "s.db"), StoreKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SubjectStore{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, config.Config{Store: "redis"})
	assert.Error(t, err)
}
