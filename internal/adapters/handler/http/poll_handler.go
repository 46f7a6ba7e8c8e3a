package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PollTypeID  int64  `json:"poll_type_id"`
	UserID      int64  `json:"user_id"`
}

type deletePollRequest struct {
	UserID int64 `json:"user_id"`
}

type setExpirationRequest struct {
	UserID   int64     `json:"user_id"`
	ClosedAt time.Time `json:"closed_at"`
}

type setOptionsRequest struct {
	UserID  int64    `json:"user_id"`
	Options []string `json:"options"`
}

// ListPolls godoc
// @Summary      Lists every poll
// @Tags         polls
// @Produce      json
// @Success      200  {array}  domain.Poll
// @Failure      500
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if polls == nil {
		polls = []domain.Poll{}
	}
	respondJSON(w, http.StatusOK, polls)
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreatePollInput{
		Title:       req.Title,
		Description: req.Description,
		PollTypeID:  req.PollTypeID,
		UserID:      req.UserID,
	}

	id, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, _ := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)

	var req deletePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Poll ID and User ID are required")
		return
	}

	if err := h.service.Delete(r.Context(), pollID, req.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondMessage(w, http.StatusBadRequest, "Poll ID and User ID are required")
		case errors.Is(err, domain.ErrPollNotFound):
			respondMessage(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, domain.ErrNotOwner):
			respondMessage(w, http.StatusForbidden, "You are not authorized to delete this poll")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondMessage(w, http.StatusOK, "Poll deleted successfully")
}

func (h *PollHandler) SetExpiration(w http.ResponseWriter, r *http.Request) {
	pollID, _ := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)

	var req setExpirationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Poll ID, User ID, and Expiration Date are required")
		return
	}

	if err := h.service.SetExpiration(r.Context(), pollID, req.UserID, req.ClosedAt); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondMessage(w, http.StatusBadRequest, "Poll ID, User ID, and Expiration Date are required")
		case errors.Is(err, domain.ErrPollNotFound):
			respondMessage(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, domain.ErrNotOwner):
			respondMessage(w, http.StatusForbidden, "You are not authorized to update this poll")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondMessage(w, http.StatusOK, "Poll expiration date set successfully")
}

func (h *PollHandler) SetOptions(w http.ResponseWriter, r *http.Request) {
	pollID, _ := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)

	var req setOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Poll ID, User ID, and options are required")
		return
	}

	input := ports.SetOptionsInput{
		PollID:  pollID,
		UserID:  req.UserID,
		Options: req.Options,
	}

	if err := h.service.SetOptions(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondMessage(w, http.StatusBadRequest, "Poll ID, User ID, and options are required")
		case errors.Is(err, domain.ErrPollNotFound):
			respondMessage(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, domain.ErrNotOwner):
			respondMessage(w, http.StatusForbidden, "You are not authorized to set options for this poll")
		case errors.Is(err, domain.ErrPollExpired):
			respondMessage(w, http.StatusBadRequest, "Poll has expired")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondMessage(w, http.StatusOK, "Poll options set successfully")
}

func (h *PollHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Poll ID is required")
		return
	}

	options, err := h.service.GetOptions(r.Context(), pollID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondMessage(w, http.StatusBadRequest, "Poll ID is required")
		case errors.Is(err, domain.ErrPollNotFound):
			respondMessage(w, http.StatusNotFound, "Poll not found")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if options == nil {
		options = []domain.PollOption{}
	}
	respondJSON(w, http.StatusOK, options)
}
