package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/cbodonnell/collide/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveScene inserts the scene or replaces the one with the same ID.
	SaveScene(ctx context.Context, scene *models.Scene) error
	LoadScene(ctx context.Context, id string) (*models.Scene, error)
	// ListScenes returns every scene without its data, oldest first.
	ListScenes(ctx context.Context) ([]*models.Scene, error)
	DeleteScene(ctx context.Context, id string) error
}

//go:embed migrations
var migrations embed.FS

// readMigrations returns the statements for dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	statements := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrations, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		statements = append(statements, string(migration))
	}
	return statements, nil
}
