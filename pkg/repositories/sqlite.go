package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	statements, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	log.Debug("Opened SQLite database at %s", path)
	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveScene(ctx context.Context, scene *models.Scene) error {
	q := `
	INSERT OR REPLACE INTO scenes (id, name, data, created_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, scene.ID, scene.Name, scene.Data, scene.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert scene: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadScene(ctx context.Context, id string) (*models.Scene, error) {
	q := `
	SELECT id, name, data, created_at FROM scenes WHERE id = ?;
	`
	scene := &models.Scene{}
	var createdAt int64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&scene.ID, &scene.Name, &scene.Data, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan scene: %v", err)
	}
	scene.CreatedAt = time.UnixMilli(createdAt).UTC()

	return scene, nil
}

func (r *SQLiteRepository) ListScenes(ctx context.Context) ([]*models.Scene, error) {
	q := `
	SELECT id, name, created_at FROM scenes ORDER BY created_at, id;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenes: %v", err)
	}
	defer rows.Close()

	scenes := make([]*models.Scene, 0)
	for rows.Next() {
		scene := &models.Scene{}
		var createdAt int64
		if err := rows.Scan(&scene.ID, &scene.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan scene: %v", err)
		}
		scene.CreatedAt = time.UnixMilli(createdAt).UTC()
		scenes = append(scenes, scene)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scenes: %v", err)
	}

	return scenes, nil
}

func (r *SQLiteRepository) DeleteScene(ctx context.Context, id string) error {
	q := `
	DELETE FROM scenes WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("failed to delete scene: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if affected == 0 {
		return &ErrNotFound{}
	}

	return nil
}
