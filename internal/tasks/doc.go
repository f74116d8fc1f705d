// Package tasks implements the task and category services.
//
// Every task operation takes the acting owner's user ID as an explicit
// parameter. The services never consult ambient request state; the HTTP
// layer resolves the authenticated identity once and threads the owner
// through each call. A task read, update, or delete keyed by an ID the
// owner does not hold reports ErrTaskNotFound, the same answer as for an
// ID that does not exist at all.
//
// Categories are shared across users. Creating and renaming them is
// guarded by name uniqueness, and deleting one cascades to every task
// referencing it regardless of owner.
package tasks
