package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cinelog/cinelog/internal/repository"
)

type userCreateRequest struct {
	Username string `json:"username"`
}

type userCreateResponse struct {
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "username is required")
		return
	}

	user, err := s.repo.Users.Create(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			s.respondError(w, http.StatusBadRequest, "DUPLICATE_USERNAME", "Username already exists")
			return
		}
		s.logger.Printf("create user error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		return
	}

	s.respondJSON(w, http.StatusCreated, userCreateResponse{
		Message:  "User created successfully",
		ID:       user.ID,
		Username: user.Username,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := decodeIDParam(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	user, err := s.repo.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		s.logger.Printf("get user error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch user")
		return
	}

	s.respondJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
