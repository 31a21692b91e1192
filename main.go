package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"todosvc/config"
	"todosvc/domain"
	"todosvc/handler"
	"todosvc/repository"
	"todosvc/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "todosvc",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	repo, cleanup, err := newRepository(cfg)
	if err != nil {
		logger.Fatal("initialize store", "err", err)
	}
	defer cleanup()

	todoUsecase := usecase.NewTodoUsecase(repo)
	todoHandler := handler.NewTodoHandler(todoUsecase)

	router := handler.NewRouter(todoHandler)
	router.Use(handler.Logging(logger))

	logger.Info("server starting", "addr", cfg.Addr, "store", cfg.Store)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func newRepository(cfg *config.Config) (domain.TodoRepository, func(), error) {
	switch cfg.Store {
	case "sqlite":
		repo, err := repository.NewSQLiteTodoRepository(cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	default:
		return repository.NewMemoryTodoRepository(), func() {}, nil
	}
}
