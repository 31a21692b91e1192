package domain

import "errors"

var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	// List retrieves all todos; order is unspecified
	List() ([]Todo, error)

	// Get retrieves a todo by its ID, or ErrTodoNotFound
	Get(id uint64) (Todo, error)

	// Insert stores a todo, overwriting any existing entry with the same ID
	Insert(todo Todo) error

	// Update replaces an existing todo; ErrTodoNotFound if the ID is absent
	Update(id uint64, todo Todo) error

	// Delete removes a todo by ID; deleting an absent ID is not an error
	Delete(id uint64) error
}
