package todos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/platform/apierr"
)

const notFoundMsg = "Todo not found"

// Service handles todo business logic. All operations are scoped to the
// authenticated owner.
type Service struct {
	repo     RepositoryPort
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all todos owned by ownerID.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Todo{}
	}
	return items, nil
}

// Get fetches a single todo.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Todo, error) {
	todo, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return todo, nil
}

// Create validates the input and persists a new todo for ownerID.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input Input) (*Todo, error) {
	input.Normalize()
	if err := input.Validate(s.validate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &Todo{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update re-validates the mutable fields and rewrites an existing todo. The
// todo must exist within the caller's scope.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input Input) (*Todo, error) {
	input.Normalize()
	if err := input.Validate(s.validate); err != nil {
		return nil, err
	}

	todo, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Completed = input.Completed
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, mapRepoErr(err)
	}
	return todo, nil
}

// Delete removes a todo. Deleting an absent id fails NotFound every time and
// never mutates state.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apierr.NotFound(notFoundMsg)
	}
	return fmt.Errorf("todos: %w", err)
}
