// ABOUTME: Tests for ownership-scoped task persistence
// ABOUTME: Covers CRUD, cross-user isolation, search, and counters

package store

import (
	"context"
	"errors"
	"testing"
)

func createTestTask(t *testing.T, s *SQLiteStore, userID int64, title string, completed bool) *Task {
	t.Helper()
	task := &Task{
		Title:     title,
		Completed: completed,
		UserID:    userID,
	}
	if err := s.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("CreateTask(%q) failed: %v", title, err)
	}
	return task
}

func TestCreateAndGetTask(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")

	task := &Task{
		Title:       "Buy milk",
		Description: "2 liters",
		UserID:      alice.ID,
	}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID == 0 {
		t.Error("CreateTask did not assign an ID")
	}
	if task.CreatedAt.IsZero() {
		t.Error("CreateTask did not set CreatedAt")
	}

	got, err := s.GetTaskByIDAndOwner(ctx, task.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetTaskByIDAndOwner failed: %v", err)
	}
	if got.Title != "Buy milk" || got.Description != "2 liters" || got.Completed {
		t.Errorf("GetTaskByIDAndOwner = %+v", got)
	}
	if got.CategoryID != nil {
		t.Errorf("CategoryID = %v, want nil", got.CategoryID)
	}
}

func TestGetTask_WrongOwnerIsNotFound(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	task := createTestTask(t, s, alice.ID, "Alice's task", false)

	_, err := s.GetTaskByIDAndOwner(ctx, task.ID, bob.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetTaskByIDAndOwner under wrong owner error = %v, want ErrNotFound", err)
	}
}

func TestListTasksByOwner_Isolation(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	createTestTask(t, s, alice.ID, "a1", false)
	createTestTask(t, s, alice.ID, "a2", true)
	createTestTask(t, s, bob.ID, "b1", false)

	aliceTasks, err := s.ListTasksByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListTasksByOwner failed: %v", err)
	}
	if len(aliceTasks) != 2 {
		t.Errorf("alice has %d tasks, want 2", len(aliceTasks))
	}
	for _, task := range aliceTasks {
		if task.UserID != alice.ID {
			t.Errorf("task %d owned by %d, want %d", task.ID, task.UserID, alice.ID)
		}
	}

	bobTasks, err := s.ListTasksByOwner(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListTasksByOwner failed: %v", err)
	}
	if len(bobTasks) != 1 || bobTasks[0].Title != "b1" {
		t.Errorf("bob's tasks = %+v, want just b1", bobTasks)
	}
}

func TestListTasksByOwnerAndCompleted(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	createTestTask(t, s, alice.ID, "open", false)
	createTestTask(t, s, alice.ID, "done", true)
	createTestTask(t, s, bob.ID, "bob done", true)

	completed, err := s.ListTasksByOwnerAndCompleted(ctx, alice.ID, true)
	if err != nil {
		t.Fatalf("ListTasksByOwnerAndCompleted failed: %v", err)
	}
	if len(completed) != 1 || completed[0].Title != "done" {
		t.Errorf("completed = %+v, want just 'done'", completed)
	}
}

func TestSearchTasksByOwner_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	createTestTask(t, s, alice.ID, "Spring Boot lernen", false)
	createTestTask(t, s, alice.ID, "Spring Security", false)
	createTestTask(t, s, alice.ID, "Java Basics", false)
	createTestTask(t, s, bob.ID, "Spring cleaning", false)

	results, err := s.SearchTasksByOwner(ctx, alice.ID, "spring")
	if err != nil {
		t.Fatalf("SearchTasksByOwner failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("search returned %d tasks, want 2: %+v", len(results), results)
	}
	for _, task := range results {
		if task.UserID != alice.ID {
			t.Errorf("search leaked task %d owned by %d", task.ID, task.UserID)
		}
		if task.Title == "Java Basics" {
			t.Error("search matched 'Java Basics' for keyword 'spring'")
		}
	}
}

func TestSearchTasksByOwner_LiteralMetacharacters(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")

	createTestTask(t, s, alice.ID, "Save 50 dollars", false)
	createTestTask(t, s, alice.ID, "Donate 50% of cake", false)
	createTestTask(t, s, alice.ID, "rename user_id column", false)
	createTestTask(t, s, alice.ID, "rename userXid column", false)

	tests := []struct {
		keyword string
		want    string
	}{
		{"50%", "Donate 50% of cake"},
		{"user_id", "rename user_id column"},
	}

	for _, tt := range tests {
		results, err := s.SearchTasksByOwner(ctx, alice.ID, tt.keyword)
		if err != nil {
			t.Fatalf("SearchTasksByOwner(%q) failed: %v", tt.keyword, err)
		}
		if len(results) != 1 {
			t.Fatalf("keyword %q matched %d tasks, want 1 (literal substring): %+v", tt.keyword, len(results), results)
		}
		if results[0].Title != tt.want {
			t.Errorf("keyword %q matched %q, want %q", tt.keyword, results[0].Title, tt.want)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	task := createTestTask(t, s, alice.ID, "original", false)

	cat := &Category{Name: "Work"}
	if err := s.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	task.Title = "updated"
	task.Description = "now with description"
	task.Completed = true
	task.CategoryID = &cat.ID
	if err := s.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := s.GetTaskByIDAndOwner(ctx, task.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetTaskByIDAndOwner failed: %v", err)
	}
	if got.Title != "updated" || !got.Completed || got.CategoryID == nil || *got.CategoryID != cat.ID {
		t.Errorf("after update: %+v", got)
	}

	// Clearing the category is an explicit write, not a no-op
	task.CategoryID = nil
	if err := s.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask (clear category) failed: %v", err)
	}
	got, err = s.GetTaskByIDAndOwner(ctx, task.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetTaskByIDAndOwner failed: %v", err)
	}
	if got.CategoryID != nil {
		t.Errorf("CategoryID = %v after clearing, want nil", got.CategoryID)
	}
}

func TestUpdateTask_WrongOwner(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	task := createTestTask(t, s, alice.ID, "alice's", false)

	hijack := &Task{ID: task.ID, Title: "stolen", UserID: bob.ID}
	if err := s.UpdateTask(ctx, hijack); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTask under wrong owner error = %v, want ErrNotFound", err)
	}

	got, _ := s.GetTaskByIDAndOwner(ctx, task.ID, alice.ID)
	if got.Title != "alice's" {
		t.Errorf("task title = %q, cross-user update went through", got.Title)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	task := createTestTask(t, s, alice.ID, "to delete", false)

	if err := s.DeleteTaskByIDAndOwner(ctx, task.ID, bob.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTaskByIDAndOwner under wrong owner error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteTaskByIDAndOwner(ctx, task.ID, alice.ID); err != nil {
		t.Fatalf("DeleteTaskByIDAndOwner failed: %v", err)
	}

	if _, err := s.GetTaskByIDAndOwner(ctx, task.ID, alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("task still present after delete: %v", err)
	}
}

func TestCountTasksByOwner(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")

	createTestTask(t, s, alice.ID, "t1", false)
	createTestTask(t, s, alice.ID, "t2", true)
	createTestTask(t, s, alice.ID, "t3", true)
	createTestTask(t, s, bob.ID, "b1", true)

	total, completed, err := s.CountTasksByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("CountTasksByOwner failed: %v", err)
	}
	if total != 3 || completed != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", total, completed)
	}
}
