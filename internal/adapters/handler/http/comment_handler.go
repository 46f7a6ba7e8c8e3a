package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// The comment endpoints keep the original wire naming: the request carries
// "pollId" while everything else in the API is snake_case.
type addCommentRequest struct {
	PollID  int64  `json:"pollId"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

type addCommentResponse struct {
	ID      int64  `json:"id"`
	PollID  int64  `json:"pollId"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	input := ports.AddCommentInput{
		PollID:  req.PollID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	comment, err := h.service.Add(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, addCommentResponse{
		ID:      comment.ID,
		PollID:  comment.PollID,
		UserID:  comment.UserID,
		Content: comment.Content,
	})
}

func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(chi.URLParam(r, "pollId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	comments, err := h.service.ListByPoll(r.Context(), pollID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "invalid poll id")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	respondJSON(w, http.StatusOK, comments)
}
