package usecase

import (
	"todosvc/domain"
)

// TodoUsecase handles business logic for todo operations
type TodoUsecase struct {
	repo domain.TodoRepository
}

// NewTodoUsecase creates a new TodoUsecase
func NewTodoUsecase(repo domain.TodoRepository) *TodoUsecase {
	return &TodoUsecase{
		repo: repo,
	}
}

// ListTodos retrieves all todos
func (u *TodoUsecase) ListTodos() ([]domain.Todo, error) {
	return u.repo.List()
}

// GetTodo retrieves a todo by ID
func (u *TodoUsecase) GetTodo(id uint64) (domain.Todo, error) {
	return u.repo.Get(id)
}

// CreateTodo stores a todo keyed by the ID it carries. An existing
// todo with the same ID is overwritten; creation never fails for a
// duplicate ID.
func (u *TodoUsecase) CreateTodo(todo domain.Todo) error {
	return u.repo.Insert(todo)
}

// UpdateTodo replaces the todo stored under id. The path-supplied id
// wins over whatever id the payload carries.
func (u *TodoUsecase) UpdateTodo(id uint64, todo domain.Todo) error {
	todo.ID = id
	return u.repo.Update(id, todo)
}

// DeleteTodo removes a todo; deleting an absent ID succeeds
func (u *TodoUsecase) DeleteTodo(id uint64) error {
	return u.repo.Delete(id)
}
