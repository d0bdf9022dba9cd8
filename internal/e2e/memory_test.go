package e2e

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/todos"
)

// In-memory repositories standing in for Postgres. They mirror the store's
// contract: unique emails, owner-scoped todo access, single-operation
// atomicity via a mutex.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*auth.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Email]; exists {
		return auth.ErrEmailTaken
	}
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type memTodoRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*todos.Todo
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{items: make(map[uuid.UUID]*todos.Todo)}
}

func (m *memTodoRepo) List(ctx context.Context, ownerID uuid.UUID) ([]todos.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []todos.Todo
	for _, todo := range m.items {
		if todo.OwnerID == ownerID {
			result = append(result, *todo)
		}
	}
	return result, nil
}

func (m *memTodoRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (*todos.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	todo, ok := m.items[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, todos.ErrNotFound
	}
	copied := *todo
	return &copied, nil
}

func (m *memTodoRepo) Create(ctx context.Context, todo *todos.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *todo
	m.items[todo.ID] = &copied
	return nil
}

func (m *memTodoRepo) Update(ctx context.Context, todo *todos.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return todos.ErrNotFound
	}
	copied := *todo
	m.items[todo.ID] = &copied
	return nil
}

func (m *memTodoRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[id]
	if !ok || existing.OwnerID != ownerID {
		return todos.ErrNotFound
	}
	delete(m.items, id)
	return nil
}
