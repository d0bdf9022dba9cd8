package todos

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound indicates no todo matched within the caller's scope.
var ErrNotFound = errors.New("todo not found")

// RepositoryPort defines data access methods for todos. Every operation is
// scoped to an owner; a todo belonging to someone else behaves as absent.
type RepositoryPort interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error)
	Create(ctx context.Context, todo *Todo) error
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
