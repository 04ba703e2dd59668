package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/collide/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	repository, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "collide.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(ctx) })
	return repository
}

func TestSQLiteRepository_Scenes(t *testing.T) {
	testRepositoryScenes(t, newTestSQLiteRepository(t))
}

func TestSQLiteRepository_ReopenKeepsScenes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "collide.db")

	repository, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repository.SaveScene(ctx, &models.Scene{ID: "a", Name: "kept", Data: []byte{9}, CreatedAt: time.Now()}))
	require.NoError(t, repository.Close(ctx))

	repository, err = NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer repository.Close(ctx)
	got, err := repository.LoadScene(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Name)
}

func TestReadMigrations(t *testing.T) {
	for _, dialect := range []string{"sqlite", "postgres"} {
		statements, err := readMigrations(dialect)
		require.NoError(t, err)
		require.NotEmpty(t, statements)
		assert.Contains(t, statements[0], "CREATE TABLE IF NOT EXISTS scenes")
	}

	_, err := readMigrations("oracle")
	assert.Error(t, err)
}
