// ABOUTME: Tests for the authentication service against a real SQLite store
// ABOUTME: Covers registration uniqueness precedence and uniform login failures

package auth

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skoehler/tasktrack/internal/store"
)

func newTestService(t *testing.T) (*Service, *TokenIssuer) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "auth-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	issuer := newTestIssuer(t, time.Hour)
	return NewService(st, issuer, slog.Default()), issuer
}

func TestService_Register(t *testing.T) {
	svc, issuer := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, store.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash, "password must not be stored in the clear")

	// The registration token is immediately usable
	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice", "other@example.com", "secret2")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "bob", "alice@example.com", "secret2")
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestService_Register_UsernameCheckedBeforeEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// Both username and email collide; the username error wins.
	_, _, err = svc.Register(ctx, "alice", "alice@example.com", "secret2")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestService_Login(t *testing.T) {
	svc, issuer := newTestService(t)
	ctx := context.Background()

	_, registerToken, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	user, loginToken, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	subject, err := issuer.Verify(loginToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// Each login issues its own token; registration tokens stay valid.
	_, err = issuer.Verify(registerToken)
	assert.NoError(t, err)
}

func TestService_Login_UniformFailure(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "alice", password: "wrong"},
		{name: "unknown username", username: "nobody", password: "secret1"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
