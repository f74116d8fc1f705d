// ABOUTME: Category persistence for the SQLite store
// ABOUTME: Deleting a category cascades to its tasks inside one transaction

package store

import (
	"context"
	"database/sql"
	"time"
)

// CreateCategory inserts a new category. The UNIQUE constraint on the name
// is the authoritative guard; violations map to ErrDuplicateCategory.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, description, created_at)
		VALUES (?, ?, ?)
	`, category.Name, category.Description, category.CreatedAt.Format(time.RFC3339))

	if isUniqueConstraintError(err, "categories.name") {
		return ErrDuplicateCategory
	}
	if err != nil {
		return err
	}

	category.ID, err = result.LastInsertId()
	return err
}

// GetCategory retrieves a category by ID.
func (s *SQLiteStore) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var c Category
	var description sql.NullString
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at FROM categories WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &description, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Description = description.String
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, created_at FROM categories ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var categories []*Category
	for rows.Next() {
		var c Category
		var description sql.NullString
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &description, &createdAt); err != nil {
			return nil, err
		}
		c.Description = description.String
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// UpdateCategory overwrites a category's name and description.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *Category) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, description = ? WHERE id = ?
	`, category.Name, category.Description, category.ID)

	if isUniqueConstraintError(err, "categories.name") {
		return ErrDuplicateCategory
	}
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory deletes a category and every task referencing it, across all
// owners, in one transaction. Returns the number of tasks removed.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) (tasksDeleted int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	taskResult, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE category_id = ?`, id)
	if err != nil {
		return 0, err
	}
	tasksDeleted, _ = taskResult.RowsAffected()

	catResult, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	if n, _ := catResult.RowsAffected(); n == 0 {
		return 0, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	if tasksDeleted > 0 {
		s.logger.Info("category cascade removed tasks", "category_id", id, "tasks", tasksDeleted)
	}
	return tasksDeleted, nil
}

// CategoryNameExists reports whether a category with the given name exists.
func (s *SQLiteStore) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE name = ?`, name).Scan(&n)
	return n > 0, err
}
