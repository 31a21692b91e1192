package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"todosvc/domain"
)

// DefaultSQLiteDSN names a shared in-memory database, so the sqlite
// backend keeps the same lifetime as the process: all connections in
// the pool see one database and it vanishes on shutdown.
const DefaultSQLiteDSN = "file:todosvc?mode=memory&cache=shared"

// SQLiteTodoRepository implements TodoRepository on top of SQLite.
// The priority range is also enforced by a CHECK constraint, but the
// domain layer rejects out-of-range values before they get here.
type SQLiteTodoRepository struct {
	db *sql.DB
}

// NewSQLiteTodoRepository opens the database and initializes the schema
func NewSQLiteTodoRepository(dsn string) (*SQLiteTodoRepository, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &SQLiteTodoRepository{db: db}

	if err := repo.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *SQLiteTodoRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteTodoRepository) initTables() error {
	todoTableSQL := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY,
		priority INTEGER NOT NULL CHECK (priority BETWEEN 1 AND 5),
		title TEXT NOT NULL
	);`

	if _, err := r.db.Exec(todoTableSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	return nil
}

// List retrieves all todos in unspecified order
func (r *SQLiteTodoRepository) List() ([]domain.Todo, error) {
	rows, err := r.db.Query(`SELECT id, priority, title FROM todos`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(&todo.ID, &todo.Priority, &todo.Title); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// Get retrieves a todo by its ID
func (r *SQLiteTodoRepository) Get(id uint64) (domain.Todo, error) {
	row := r.db.QueryRow(`SELECT id, priority, title FROM todos WHERE id = ?`, id)

	var todo domain.Todo
	err := row.Scan(&todo.ID, &todo.Priority, &todo.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// Insert stores a todo, overwriting any existing row with the same ID
func (r *SQLiteTodoRepository) Insert(todo domain.Todo) error {
	query := `
		INSERT INTO todos (id, priority, title)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET priority = excluded.priority, title = excluded.title
	`
	if _, err := r.db.Exec(query, todo.ID, todo.Priority, todo.Title); err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

// Update replaces an existing todo, keyed by id
func (r *SQLiteTodoRepository) Update(id uint64, todo domain.Todo) error {
	result, err := r.db.Exec(`UPDATE todos SET priority = ?, title = ? WHERE id = ?`,
		todo.Priority, todo.Title, id)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo by ID; removing an absent ID is a no-op
func (r *SQLiteTodoRepository) Delete(id uint64) error {
	if _, err := r.db.Exec(`DELETE FROM todos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
