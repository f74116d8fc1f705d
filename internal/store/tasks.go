// ABOUTME: Task persistence for the SQLite store
// ABOUTME: All lookups and mutations are scoped to the owning user

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const taskColumns = `id, title, description, completed, category_id, user_id, created_at`

// CreateTask inserts a new task. CreatedAt is set once and never updated.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, completed, category_id, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.Title, task.Description, task.Completed, task.CategoryID, task.UserID,
		task.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return err
	}

	task.ID, err = result.LastInsertId()
	return err
}

// GetTaskByIDAndOwner retrieves a task by ID, restricted to the given owner.
// A task owned by someone else is indistinguishable from a missing one.
func (s *SQLiteStore) GetTaskByIDAndOwner(ctx context.Context, id, userID int64) (*Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks WHERE id = ? AND user_id = ?
	`, id, userID)

	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasksByOwner lists all tasks for a user, newest first.
func (s *SQLiteStore) ListTasksByOwner(ctx context.Context, userID int64) ([]*Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM tasks WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
}

// ListTasksByOwnerAndCompleted lists a user's tasks filtered by completion status.
func (s *SQLiteStore) ListTasksByOwnerAndCompleted(ctx context.Context, userID int64, completed bool) ([]*Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM tasks WHERE user_id = ? AND completed = ? ORDER BY created_at DESC
	`, userID, completed)
}

// SearchTasksByOwner lists a user's tasks whose title contains the keyword
// as a literal substring, case-insensitively. LIKE metacharacters in the
// keyword are escaped so "50%" matches only titles containing "50%".
func (s *SQLiteStore) SearchTasksByOwner(ctx context.Context, userID int64, keyword string) ([]*Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM tasks WHERE user_id = ? AND LOWER(title) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
		ORDER BY created_at DESC
	`, userID, escapeLike(keyword))
}

// escapeLike escapes the LIKE pattern metacharacters in s so it matches
// literally under ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ListTasksByCategoryAndOwner lists a user's tasks within a category.
func (s *SQLiteStore) ListTasksByCategoryAndOwner(ctx context.Context, categoryID, userID int64) ([]*Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM tasks WHERE category_id = ? AND user_id = ? ORDER BY created_at DESC
	`, categoryID, userID)
}

// UpdateTask overwrites the mutable fields of a task identified by (ID, UserID).
// Setting CategoryID to nil clears the category association.
// CreatedAt and UserID are never modified.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *Task) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, completed = ?, category_id = ?
		WHERE id = ? AND user_id = ?
	`, task.Title, task.Description, task.Completed, task.CategoryID, task.ID, task.UserID)

	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTaskByIDAndOwner deletes a task by ID, restricted to the given owner.
func (s *SQLiteStore) DeleteTaskByIDAndOwner(ctx context.Context, id, userID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountTasksByOwner returns a user's total and completed task counts.
func (s *SQLiteStore) CountTasksByOwner(ctx context.Context, userID int64) (total, completed int64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM tasks WHERE user_id = ?
	`, userID).Scan(&total, &completed)
	return total, completed, err
}

// queryTasks runs a task query and scans all rows.
func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...any) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tasks []*Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// scanTask scans a single task row via the given scan function.
func scanTask(scan func(dest ...any) error) (*Task, error) {
	var t Task
	var description sql.NullString
	var categoryID sql.NullInt64
	var createdAt string

	if err := scan(&t.ID, &t.Title, &description, &t.Completed, &categoryID, &t.UserID, &createdAt); err != nil {
		return nil, err
	}

	t.Description = description.String
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}
