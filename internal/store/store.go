// ABOUTME: Store interface and data types for tasktrack persistence
// ABOUTME: Defines User, Task, Category structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
// Ownership-scoped lookups return it for rows owned by someone else too,
// so callers cannot distinguish "absent" from "not yours".
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when a username is already registered
var ErrUsernameTaken = errors.New("username already taken")

// ErrEmailTaken is returned when an email is already registered
var ErrEmailTaken = errors.New("email already registered")

// ErrDuplicateCategory is returned when a category name already exists
var ErrDuplicateCategory = errors.New("category name already exists")

// Role constants for the user role tag
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account. Username and email are unique;
// uniqueness is enforced by the database, not just by pre-checks.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string // "USER" or "ADMIN"
	CreatedAt    time.Time
}

// Task represents a single task owned by exactly one user.
// The owner is set at creation and never reassigned.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CategoryID  *int64 // nil when the task has no category
	UserID      int64
	CreatedAt   time.Time
}

// Category groups tasks. Categories are shared across users;
// deleting one removes every task referencing it, regardless of owner.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// UserStore defines user persistence operations
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]*User, error)
	SetUserRole(ctx context.Context, username, role string) error
}

// TaskStore defines task persistence operations. Every read and write except
// the category cascade is keyed by (id, owner) or filtered by owner.
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTaskByIDAndOwner(ctx context.Context, id, userID int64) (*Task, error)
	ListTasksByOwner(ctx context.Context, userID int64) ([]*Task, error)
	ListTasksByOwnerAndCompleted(ctx context.Context, userID int64, completed bool) ([]*Task, error)
	SearchTasksByOwner(ctx context.Context, userID int64, keyword string) ([]*Task, error)
	ListTasksByCategoryAndOwner(ctx context.Context, categoryID, userID int64) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTaskByIDAndOwner(ctx context.Context, id, userID int64) error
	CountTasksByOwner(ctx context.Context, userID int64) (total, completed int64, err error)
}

// CategoryStore defines category persistence operations
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *Category) error
	GetCategory(ctx context.Context, id int64) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int64) (tasksDeleted int64, err error)
	CategoryNameExists(ctx context.Context, name string) (bool, error)
}

// Store is the full persistence interface backing the service layer
type Store interface {
	UserStore
	TaskStore
	CategoryStore

	// Close releases any resources held by the store
	Close() error
}
