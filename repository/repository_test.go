package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"todosvc/domain"
)

// Each backend must satisfy the same contract, so the suite runs
// against both.
func backends(t *testing.T) map[string]domain.TodoRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqliteRepo, err := NewSQLiteTodoRepository(dsn)
	if err != nil {
		t.Fatalf("open sqlite repository: %v", err)
	}
	t.Cleanup(func() { sqliteRepo.Close() })

	return map[string]domain.TodoRepository{
		"memory": NewMemoryTodoRepository(),
		"sqlite": sqliteRepo,
	}
}

func TestRepository_InsertGetRoundTrip(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := domain.Todo{ID: 1, Priority: 4, Title: "write tests"}
			if err := repo.Insert(want); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := repo.Get(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Fatalf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestRepository_InsertOverwritesExisting(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Insert(domain.Todo{ID: 1, Priority: 4, Title: "first"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := repo.Insert(domain.Todo{ID: 1, Priority: 2, Title: "second"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := repo.Get(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != "second" || got.Priority != 2 {
				t.Fatalf("overwrite did not stick: %+v", got)
			}

			todos, err := repo.List()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(todos) != 1 {
				t.Fatalf("expected 1 entry after overwrite, got %d", len(todos))
			}
		})
	}
}

func TestRepository_GetMissing(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(99)
			if !errors.Is(err, domain.ErrTodoNotFound) {
				t.Fatalf("expected ErrTodoNotFound, got %v", err)
			}
		})
	}
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Insert(domain.Todo{ID: 3, Priority: 1, Title: "gone soon"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := repo.Delete(3); err != nil {
				t.Fatalf("first delete: unexpected error: %v", err)
			}
			if err := repo.Delete(3); err != nil {
				t.Fatalf("second delete: unexpected error: %v", err)
			}
			if err := repo.Delete(42); err != nil {
				t.Fatalf("delete of never-inserted id: unexpected error: %v", err)
			}
		})
	}
}

func TestRepository_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Insert(domain.Todo{ID: 1, Priority: 3, Title: "keep me"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := repo.Update(80, domain.Todo{ID: 80, Priority: 4, Title: "never created"})
			if !errors.Is(err, domain.ErrTodoNotFound) {
				t.Fatalf("expected ErrTodoNotFound, got %v", err)
			}

			todos, err := repo.List()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(todos) != 1 || todos[0].Title != "keep me" {
				t.Fatalf("store changed after failed update: %+v", todos)
			}
		})
	}
}

func TestRepository_UpdateExisting(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Insert(domain.Todo{ID: 1, Priority: 4, Title: "write tests"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := repo.Update(1, domain.Todo{ID: 1, Priority: 3, Title: "write tests updated"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := repo.Get(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != "write tests updated" || got.Priority != 3 {
				t.Fatalf("update did not stick: %+v", got)
			}
		})
	}
}

func TestRepository_ListEmptyThenN(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			todos, err := repo.List()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(todos) != 0 {
				t.Fatalf("fresh store: expected empty list, got %d entries", len(todos))
			}

			const n = 5
			for i := uint64(1); i <= n; i++ {
				todo := domain.Todo{ID: i, Priority: domain.Priority(i), Title: fmt.Sprintf("task %d", i)}
				if err := repo.Insert(todo); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			todos, err = repo.List()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(todos) != n {
				t.Fatalf("expected %d entries, got %d", n, len(todos))
			}

			seen := make(map[uint64]bool)
			for _, todo := range todos {
				seen[todo.ID] = true
			}
			if len(seen) != n {
				t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
			}
		})
	}
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryTodoRepository()

	const workers = 8
	const opsPerWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < opsPerWorker; i++ {
				id := uint64(w*opsPerWorker + i)
				todo := domain.Todo{ID: id, Priority: 3, Title: fmt.Sprintf("task %d", id)}
				if err := repo.Insert(todo); err != nil {
					t.Errorf("insert %d: %v", id, err)
					return
				}
				if _, err := repo.Get(id); err != nil {
					t.Errorf("get %d: %v", id, err)
					return
				}
				if _, err := repo.List(); err != nil {
					t.Errorf("list: %v", err)
					return
				}
				if err := repo.Delete(id); err != nil {
					t.Errorf("delete %d: %v", id, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	todos, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty store after all deletes, got %d entries", len(todos))
	}
}
