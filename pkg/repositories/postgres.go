package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository serializes access to a single connection.
type PostgresRepository struct {
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	statements, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range statements {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveScene(ctx context.Context, scene *models.Scene) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO scenes (id, name, data, created_at) VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET name = $2, data = $3, created_at = $4;
	`
	_, err := r.conn.Exec(ctx, q, scene.ID, scene.Name, scene.Data, scene.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert scene: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadScene(ctx context.Context, id string) (*models.Scene, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT id::text, name, data, created_at FROM scenes WHERE id = $1;
	`
	scene := &models.Scene{}
	var createdAt int64
	if err := r.conn.QueryRow(ctx, q, id).Scan(&scene.ID, &scene.Name, &scene.Data, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan scene: %v", err)
	}
	scene.CreatedAt = time.UnixMilli(createdAt).UTC()

	return scene, nil
}

func (r *PostgresRepository) ListScenes(ctx context.Context) ([]*models.Scene, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	rows, err := r.conn.Query(ctx, "SELECT id::text, name, created_at FROM scenes ORDER BY created_at, id")
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

func (r *PostgresRepository) DeleteScene(ctx context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	tag, err := r.conn.Exec(ctx, "DELETE FROM scenes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete scene: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}

	return nil
}
