// ABOUTME: Handlers for the /api/users endpoints
// ABOUTME: Current-identity lookup plus the admin-only user listing

package server

import (
	"net/http"

	"github.com/skoehler/tasktrack/internal/auth"
)

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	id := auth.MustFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, UserResponse{
		ID:       id.UserID,
		Username: id.Username,
		Email:    id.Email,
		Role:     id.Role,
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		s.logger.Error("listing users", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, userResponse(user))
	}
	s.writeJSON(w, http.StatusOK, out)
}
