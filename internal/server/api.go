// ABOUTME: JSON request/response types, validation, and encoding helpers
// ABOUTME: Field limits match the registration and task rules enforced server-side

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/skoehler/tasktrack/internal/store"
)

// RegisterRequest is the JSON request body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the JSON response for successful register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TaskRequest is the JSON request body for creating and updating tasks.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CategoryID  *int64 `json:"category_id"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CategoryID  *int64 `json:"category_id"`
	CreatedAt   string `json:"created_at"`
}

// CategoryRequest is the JSON request body for creating and updating categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// StatsResponse is the JSON response for GET /api/tasks/stats.
type StatsResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

// UserResponse is the JSON shape of a user. The password hash never leaves
// the store layer.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) validate() error {
	if n := len(r.Username); n < 3 || n > 20 {
		return fmt.Errorf("username must be between 3 and 20 characters")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("email must be a valid address")
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func (r *TaskRequest) validate() error {
	if n := len(r.Title); n < 3 || n > 100 {
		return fmt.Errorf("title must be between 3 and 100 characters")
	}
	if len(r.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	return nil
}

func (r *CategoryRequest) validate() error {
	if n := len(r.Name); n < 2 || n > 50 {
		return fmt.Errorf("name must be between 2 and 50 characters")
	}
	if len(r.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	return nil
}

func taskResponse(task *store.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CategoryID:  task.CategoryID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}

func taskListResponse(list []*store.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, task := range list {
		out = append(out, taskResponse(task))
	}
	return out
}

func categoryResponse(category *store.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
	}
}

func userResponse(user *store.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// sendJSONError writes a JSON error response.
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into v, rejecting unknown fields.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {id} path value as an entity ID.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.sendJSONError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
