// ABOUTME: Handlers for the /api/tasks endpoints
// ABOUTME: Resolves the bound identity once and threads the owner into the service

package server

import (
	"errors"
	"net/http"

	"github.com/skoehler/tasktrack/internal/auth"
	"github.com/skoehler/tasktrack/internal/tasks"
)

// taskError maps service errors to HTTP responses. Tasks the caller does
// not own surface as 404, indistinguishable from IDs that never existed.
func (s *Server) taskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		s.sendJSONError(w, http.StatusNotFound, "task not found")
	case errors.Is(err, tasks.ErrCategoryNotFound):
		s.sendJSONError(w, http.StatusBadRequest, "category not found")
	default:
		s.logger.Error("task operation failed", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	var req TaskRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.taskSvc.Create(r.Context(), owner.UserID, req.Title, req.Description, req.CategoryID)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, taskResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	list, err := s.taskSvc.List(r.Context(), owner.UserID)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskListResponse(list))
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	task, err := s.taskSvc.Get(r.Context(), owner.UserID, id)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskResponse(task))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.taskSvc.Update(r.Context(), owner.UserID, id, req.Title, req.Description, req.Completed, req.CategoryID)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.taskSvc.Delete(r.Context(), owner.UserID, id); err != nil {
		s.taskError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompletedTasks(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	list, err := s.taskSvc.ListByCompleted(r.Context(), owner.UserID, true)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskListResponse(list))
}

func (s *Server) handlePendingTasks(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	list, err := s.taskSvc.ListByCompleted(r.Context(), owner.UserID, false)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskListResponse(list))
}

func (s *Server) handleSearchTasks(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		s.sendJSONError(w, http.StatusBadRequest, "keyword is required")
		return
	}

	list, err := s.taskSvc.Search(r.Context(), owner.UserID, keyword)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, taskListResponse(list))
}

func (s *Server) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	owner := auth.MustFromContext(r.Context())

	stats, err := s.taskSvc.Stats(r.Context(), owner.UserID)
	if err != nil {
		s.taskError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, StatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
	})
}
