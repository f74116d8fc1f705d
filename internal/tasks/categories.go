// ABOUTME: Category service managing the shared category catalog
// ABOUTME: Name uniqueness on create and rename, cascade on delete

package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skoehler/tasktrack/internal/store"
)

// CategoryService implements operations on the shared category catalog.
// Categories are not owned; any authenticated user may manage them.
type CategoryService struct {
	store  store.Store
	logger *slog.Logger
}

// NewCategoryService creates a category service backed by the given store.
func NewCategoryService(st store.Store, logger *slog.Logger) *CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryService{
		store:  st,
		logger: logger.With("component", "categories"),
	}
}

// Create adds a category with a unique name. The name check is a fast
// path; the database's UNIQUE constraint is what actually arbitrates.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*store.Category, error) {
	exists, err := s.store.CategoryNameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("checking category name: %w", err)
	}
	if exists {
		return nil, store.ErrDuplicateCategory
	}

	category := &store.Category{
		Name:        name,
		Description: description,
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", category.ID, "name", name)
	return category, nil
}

// Get returns a category by ID.
func (s *CategoryService) Get(ctx context.Context, id int64) (*store.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("loading category: %w", err)
	}
	return category, nil
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]*store.Category, error) {
	return s.store.ListCategories(ctx)
}

// Update renames a category or changes its description. A rename to a
// name held by another category is rejected; keeping the current name is
// always allowed.
func (s *CategoryService) Update(ctx context.Context, id int64, name, description string) (*store.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != category.Name {
		exists, err := s.store.CategoryNameExists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("checking category name: %w", err)
		}
		if exists {
			return nil, store.ErrDuplicateCategory
		}
	}

	category.Name = name
	category.Description = description
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return category, nil
}

// Delete removes a category and every task referencing it, across all
// owners, in one transaction. It returns how many tasks went with it.
func (s *CategoryService) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	tasksDeleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrCategoryNotFound
		}
		return 0, fmt.Errorf("deleting category: %w", err)
	}

	s.logger.Info("category deleted", "category_id", id, "tasks_deleted", tasksDeleted)
	return tasksDeleted, nil
}
