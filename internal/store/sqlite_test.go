// ABOUTME: Tests for the SQLite store user operations
// ABOUTME: Covers user CRUD, uniqueness enforcement, and role updates

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestStore creates a SQLite store in a temp directory.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return s
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, s *SQLiteStore, username, email string) *User {
	t.Helper()
	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutlongenoughtofit",
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%q) failed: %v", username, err)
	}
	return u
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	u := createTestUser(t, s, "alice", "alice@example.com")

	if u.ID == 0 {
		t.Error("CreateUser did not assign an ID")
	}
	if u.Role != RoleUser {
		t.Errorf("default role = %q, want %q", u.Role, RoleUser)
	}

	got, err := s.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got.ID != u.ID || got.Email != "alice@example.com" {
		t.Errorf("GetUserByUsername = %+v, want id=%d email=alice@example.com", got, u.ID)
	}

	byID, err := s.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("GetUserByID username = %q, want alice", byID.Username)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()

	if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByUsername error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByID error = %v, want ErrNotFound", err)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := &User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}
	err := s.CreateUser(context.Background(), dup)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("CreateUser error = %v, want ErrUsernameTaken", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := &User{Username: "bob", Email: "alice@example.com", PasswordHash: "x"}
	err := s.CreateUser(context.Background(), dup)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("CreateUser error = %v, want ErrEmailTaken", err)
	}
}

func TestUsernameAndEmailExists(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	createTestUser(t, s, "alice", "alice@example.com")

	exists, err := s.UsernameExists(ctx, "alice")
	if err != nil || !exists {
		t.Errorf("UsernameExists(alice) = %v, %v, want true, nil", exists, err)
	}
	exists, err = s.UsernameExists(ctx, "bob")
	if err != nil || exists {
		t.Errorf("UsernameExists(bob) = %v, %v, want false, nil", exists, err)
	}

	exists, err = s.EmailExists(ctx, "alice@example.com")
	if err != nil || !exists {
		t.Errorf("EmailExists = %v, %v, want true, nil", exists, err)
	}
	exists, err = s.EmailExists(ctx, "bob@example.com")
	if err != nil || exists {
		t.Errorf("EmailExists = %v, %v, want false, nil", exists, err)
	}
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	createTestUser(t, s, "alice", "alice@example.com")
	createTestUser(t, s, "bob", "bob@example.com")

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ListUsers returned %d users, want 2", len(users))
	}
}

func TestSetUserRole(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	createTestUser(t, s, "alice", "alice@example.com")

	if err := s.SetUserRole(ctx, "alice", RoleAdmin); err != nil {
		t.Fatalf("SetUserRole failed: %v", err)
	}

	got, err := s.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", got.Role, RoleAdmin)
	}

	if err := s.SetUserRole(ctx, "nobody", RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetUserRole(nobody) error = %v, want ErrNotFound", err)
	}
}
