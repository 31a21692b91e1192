package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"todosvc/domain"
	"todosvc/usecase"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	usecase *usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(uc *usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		usecase: uc,
	}
}

// statusResponse is the uniform acknowledgment for mutations
type statusResponse struct {
	Status string `json:"status"`
}

// errorResponse is the uniform error body
type errorResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

const notFoundReason = "Resource was not found."

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Status: "error", Reason: notFoundReason})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Reason: "Internal server error."})
}

// decodeTodo parses a request body into a Todo. A missing priority
// field would otherwise decode as the zero value and slip past the
// range gate, so it is rejected here.
func decodeTodo(r *http.Request) (domain.Todo, error) {
	var todo domain.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		return domain.Todo{}, err
	}
	if todo.Priority == 0 {
		return domain.Todo{}, domain.ErrInvalidPriority
	}
	return todo, nil
}

// ListTodos handles GET /
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.usecase.ListTodos()
	if err != nil {
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

// GetTodo handles GET /{id}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w)
		return
	}

	todo, err := h.usecase.GetTodo(id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			writeNotFound(w)
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// CreateTodo handles POST /
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := decodeTodo(r)
	if err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.usecase.CreateTodo(todo); err != nil {
		writeInternalError(w)
		return
	}

	writeOK(w)
}

// UpdateTodo handles PUT /{id}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w)
		return
	}

	todo, err := decodeTodo(r)
	if err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.usecase.UpdateTodo(id, todo); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			writeNotFound(w)
			return
		}
		writeInternalError(w)
		return
	}

	writeOK(w)
}

// DeleteTodo handles DELETE /{id}; deleting an absent ID still succeeds
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w)
		return
	}

	if err := h.usecase.DeleteTodo(id); err != nil {
		writeInternalError(w)
		return
	}

	writeOK(w)
}

// NotFound is the router-wide fallback for unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w)
}

func pathID(r *http.Request) (uint64, error) {
	vars := mux.Vars(r)
	return strconv.ParseUint(vars["id"], 10, 64)
}

// NewRouter builds the service router. The id pattern only admits
// digits, so a non-numeric id never matches a route and lands on the
// not-found fallback instead.
func NewRouter(h *TodoHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.ListTodos).Methods("GET")
	router.HandleFunc("/", h.CreateTodo).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", h.GetTodo).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", h.UpdateTodo).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", h.DeleteTodo).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(NotFound)

	return router
}
