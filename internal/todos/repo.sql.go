package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns the owner's todos, newest first.
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, completed, owner_id, created_at, updated_at
		 FROM todos WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("todos: list: %w", err)
	}
	defer rows.Close()

	var items []Todo
	for rows.Next() {
		var todo Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.OwnerID, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("todos: scan: %w", err)
		}
		items = append(items, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("todos: rows: %w", err)
	}
	return items, nil
}

// Get fetches a single todo within the owner's scope.
func (r *Repository) Get(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, title, description, completed, owner_id, created_at, updated_at
		 FROM todos WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	var todo Todo
	if err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.OwnerID, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("todos: get: %w", err)
	}
	return &todo, nil
}

// Create inserts a new todo.
func (r *Repository) Create(ctx context.Context, todo *Todo) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO todos (id, title, description, completed, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		todo.ID, todo.Title, todo.Description, todo.Completed, todo.OwnerID, todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("todos: create: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of an existing todo. The owner scope in
// the WHERE clause makes foreign todos indistinguishable from absent ones.
func (r *Repository) Update(ctx context.Context, todo *Todo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE todos SET title = $1, description = $2, completed = $3, updated_at = $4
		 WHERE id = $5 AND owner_id = $6`,
		todo.Title, todo.Description, todo.Completed, todo.UpdatedAt, todo.ID, todo.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("todos: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a todo within the owner's scope.
func (r *Repository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("todos: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
