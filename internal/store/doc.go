// Package store provides persistence for tasktrack.
//
// # Overview
//
// The Store interface covers users, tasks, and categories. The only
// implementation is SQLiteStore, backed by modernc.org/sqlite (pure Go,
// no cgo). The schema is created automatically on startup.
//
// # Ownership Scoping
//
// Task operations are keyed by (id, owner) or filtered by owner at the
// query level. A task owned by another user yields ErrNotFound, the same
// as a task that does not exist, so the store never leaks existence.
//
// # Uniqueness
//
// users.username, users.email, and categories.name carry UNIQUE
// constraints. These are the authoritative guard against concurrent
// duplicate writes; the service layer's existence pre-checks exist only
// to produce friendlier errors on the common path. Constraint violations
// are mapped to ErrUsernameTaken, ErrEmailTaken, and ErrDuplicateCategory.
//
// # Cascade
//
// DeleteCategory removes every task referencing the category, across all
// owners, and the category itself in a single transaction. The cascade is
// an explicit operation here rather than a schema-level ON DELETE rule so
// it is visible and testable.
package store
