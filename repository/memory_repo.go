package repository

import (
	"sync"

	"todosvc/domain"
)

// MemoryTodoRepository implements TodoRepository over a plain map. A
// single exclusive mutex serializes every operation, reads included;
// each operation holds the lock for its full duration and each map
// access is O(1), so nothing blocks while the lock is held.
type MemoryTodoRepository struct {
	todos map[uint64]domain.Todo
	mutex sync.Mutex
}

// NewMemoryTodoRepository creates a new in-memory todo repository
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		todos: make(map[uint64]domain.Todo),
	}
}

// List retrieves all todos in unspecified order
func (r *MemoryTodoRepository) List() ([]domain.Todo, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	todos := make([]domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}

	return todos, nil
}

// Get retrieves a todo by its ID
func (r *MemoryTodoRepository) Get(id uint64) (domain.Todo, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	todo, exists := r.todos[id]
	if !exists {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return todo, nil
}

// Insert stores a todo, overwriting any existing entry with the same ID
func (r *MemoryTodoRepository) Insert(todo domain.Todo) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.todos[todo.ID] = todo
	return nil
}

// Update replaces an existing todo, keyed by id
func (r *MemoryTodoRepository) Update(id uint64, todo domain.Todo) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.todos[id]; !exists {
		return domain.ErrTodoNotFound
	}

	r.todos[id] = todo
	return nil
}

// Delete removes a todo by ID; removing an absent ID is a no-op
func (r *MemoryTodoRepository) Delete(id uint64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.todos, id)
	return nil
}
