// ABOUTME: Tests for identity propagation via context
// ABOUTME: Covers WithIdentity/FromContext round-trips and the MustFromContext panic

package auth

import (
	"context"
	"testing"

	"github.com/skoehler/tasktrack/internal/store"
)

func TestWithIdentity_FromContext(t *testing.T) {
	id := &Identity{
		UserID:   42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     store.RoleUser,
	}

	ctx := WithIdentity(context.Background(), id)
	got := FromContext(ctx)

	if got == nil {
		t.Fatal("FromContext() = nil, want identity")
	}
	if got.UserID != 42 || got.Username != "alice" {
		t.Errorf("FromContext() = %+v", got)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := FromContext(context.Background()); got != nil {
		t.Errorf("FromContext() = %+v, want nil", got)
	}
}

func TestMustFromContext_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFromContext() should panic without identity")
		}
	}()
	MustFromContext(context.Background())
}

func TestIdentity_IsAdmin(t *testing.T) {
	user := &Identity{Role: store.RoleUser}
	if user.IsAdmin() {
		t.Error("USER role reported as admin")
	}

	admin := &Identity{Role: store.RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("ADMIN role not reported as admin")
	}
}
