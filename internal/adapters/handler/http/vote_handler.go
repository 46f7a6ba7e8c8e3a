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

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type castVoteRequest struct {
	PollID   int64 `json:"poll_id"`
	OptionID int64 `json:"option_id"`
	UserID   int64 `json:"user_id"`
}

// Vote godoc
// @Summary      Casts a vote on a poll option
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      404
// @Router       /polls/vote [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CastVoteInput{
		PollID:   req.PollID,
		OptionID: req.OptionID,
		UserID:   req.UserID,
	}

	id, err := h.service.Cast(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "Invalid request")
		case errors.Is(err, domain.ErrPollNotFound):
			respondError(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, domain.ErrPollExpired):
			respondError(w, http.StatusBadRequest, "Poll has expired")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *VoteHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	results, err := h.service.Results(r.Context(), pollID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "invalid poll id")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if results == nil {
		results = []domain.PollResult{}
	}
	respondJSON(w, http.StatusOK, results)
}
