// ABOUTME: Task service with ownership threaded explicitly through every call
// ABOUTME: All reads and writes are scoped to the acting owner's user ID

package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skoehler/tasktrack/internal/store"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable.
var ErrTaskNotFound = errors.New("task not found")

// ErrCategoryNotFound is returned when a referenced category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// Stats summarizes a single owner's tasks.
type Stats struct {
	Total     int64
	Completed int64
	Pending   int64
}

// Service implements task operations scoped to an owner.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// NewService creates a task service backed by the given store.
func NewService(st store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger.With("component", "tasks"),
	}
}

// checkCategory verifies a category reference before a task points at it.
func (s *Service) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.store.GetCategory(ctx, *categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("checking category: %w", err)
	}
	return nil
}

// Create creates a task owned by ownerID. The owner is fixed at creation;
// no later operation can move the task to another user.
func (s *Service) Create(ctx context.Context, ownerID int64, title, description string, categoryID *int64) (*store.Task, error) {
	if err := s.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	task := &store.Task{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		UserID:      ownerID,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", ownerID)
	return task, nil
}

// Get returns the task only if ownerID owns it.
func (s *Service) Get(ctx context.Context, ownerID, id int64) (*store.Task, error) {
	task, err := s.store.GetTaskByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}
	return task, nil
}

// List returns all of ownerID's tasks, newest first.
func (s *Service) List(ctx context.Context, ownerID int64) ([]*store.Task, error) {
	return s.store.ListTasksByOwner(ctx, ownerID)
}

// ListByCompleted returns ownerID's tasks filtered by completion state.
func (s *Service) ListByCompleted(ctx context.Context, ownerID int64, completed bool) ([]*store.Task, error) {
	return s.store.ListTasksByOwnerAndCompleted(ctx, ownerID, completed)
}

// Search returns ownerID's tasks whose title contains keyword,
// case-insensitively. Other users' tasks never appear, whatever the match.
func (s *Service) Search(ctx context.Context, ownerID int64, keyword string) ([]*store.Task, error) {
	return s.store.SearchTasksByOwner(ctx, ownerID, keyword)
}

// ListByCategory returns ownerID's tasks in the given category. The
// category itself is shared, so the result is the intersection of the
// category's tasks and the owner's tasks.
func (s *Service) ListByCategory(ctx context.Context, ownerID, categoryID int64) ([]*store.Task, error) {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("checking category: %w", err)
	}
	return s.store.ListTasksByCategoryAndOwner(ctx, categoryID, ownerID)
}

// Update rewrites a task's mutable fields. A nil categoryID clears the
// category. Tasks owned by other users are reported as ErrTaskNotFound.
func (s *Service) Update(ctx context.Context, ownerID, id int64, title, description string, completed bool, categoryID *int64) (*store.Task, error) {
	task, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.Completed = completed
	task.CategoryID = categoryID
	if err := s.store.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return task, nil
}

// Delete removes a task only if ownerID owns it.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.store.DeleteTaskByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}

	s.logger.Info("task deleted", "task_id", id, "user_id", ownerID)
	return nil
}

// Stats returns task counts for ownerID.
func (s *Service) Stats(ctx context.Context, ownerID int64) (*Stats, error) {
	total, completed, err := s.store.CountTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	return &Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}, nil
}
