// ABOUTME: Handlers for the /api/categories endpoints
// ABOUTME: Shared catalog CRUD plus the per-user category task listing

package server

import (
	"errors"
	"net/http"

	"github.com/skoehler/tasktrack/internal/auth"
	"github.com/skoehler/tasktrack/internal/store"
	"github.com/skoehler/tasktrack/internal/tasks"
)

func (s *Server) categoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasks.ErrCategoryNotFound):
		s.sendJSONError(w, http.StatusNotFound, "category not found")
	case errors.Is(err, store.ErrDuplicateCategory):
		s.sendJSONError(w, http.StatusConflict, "category name already exists")
	default:
		s.logger.Error("category operation failed", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := s.catSvc.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		s.categoryError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, categoryResponse(category))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.catSvc.List(r.Context())
	if err != nil {
		s.categoryError(w, err)
		return
	}

	out := make([]CategoryResponse, 0, len(list))
	for _, category := range list {
		out = append(out, categoryResponse(category))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	category, err := s.catSvc.Get(r.Context(), id)
	if err != nil {
		s.categoryError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categoryResponse(category))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := s.catSvc.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		s.categoryError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categoryResponse(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	tasksDeleted, err := s.catSvc.Delete(r.Context(), id)
	if err != nil {
		s.categoryError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int64{"tasks_deleted": tasksDeleted})
}

func (s *Server) handleCategoryTasks(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	list, err := s.taskSvc.ListByCategory(r.Context(), owner.UserID, id)
	if err != nil {
		if errors.Is(err, tasks.ErrCategoryNotFound) {
			s.sendJSONError(w, http.StatusNotFound, "category not found")
			return
		}
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskListResponse(list))
}
