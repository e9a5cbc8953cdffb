package httpserver

import (
	"errors"
	"net/http"

	"github.com/cinelog/cinelog/internal/repository"
)

type ratingRequest struct {
	UserID  int64   `json:"user_id"`
	MovieID int64   `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

type ratingSubmitResponse struct {
	Message  string `json:"message"`
	Status   string `json:"status"`
	RatingID int64  `json:"rating_id"`
}

type userRatingsResponse struct {
	UserID  int64             `json:"user_id"`
	Ratings []userRatingEntry `json:"ratings"`
}

type userRatingEntry struct {
	MovieID int64   `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	id, err := s.repo.Ratings.Insert(r.Context(), repository.RatingInsertParams{
		UserID:  req.UserID,
		MovieID: req.MovieID,
		Value:   req.Rating,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConstraintViolation) {
			s.respondError(w, http.StatusBadRequest, "CONSTRAINT_VIOLATION", "Rating references an unknown user")
			return
		}
		s.logger.Printf("insert rating error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add rating")
		return
	}

	s.respondJSON(w, http.StatusOK, ratingSubmitResponse{
		Message:  "Rating added successfully",
		Status:   "success",
		RatingID: id,
	})
}

func (s *Server) handleGetUserRatings(w http.ResponseWriter, r *http.Request) {
	userID, err := decodeIDParam(r, "userID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	ratings, err := s.repo.Ratings.ListByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "No ratings found for this user")
			return
		}
		s.logger.Printf("list ratings error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch ratings")
		return
	}

	entries := make([]userRatingEntry, 0, len(ratings))
	for _, rating := range ratings {
		entries = append(entries, userRatingEntry{MovieID: rating.MovieID, Rating: rating.Value})
	}

	s.respondJSON(w, http.StatusOK, userRatingsResponse{UserID: userID, Ratings: entries})
}
