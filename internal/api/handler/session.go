package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleplanner/internal/api/request"
	"github.com/mcoot/pickleplanner/internal/api/response"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// SessionHandler handles session and match endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

// Preview handles POST /api/v1/sessions/preview
func (h *SessionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req request.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	preview, err := h.controller.Preview(r.Context(), toPlayerIDs(req.PlayerIDs), req.SessionMinutes, req.MatchMinutes)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PreviewFromService(preview))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.PlayerIDs) == 0 {
		WriteError(w, NewInvalidRequestError("player_ids is required"))
		return
	}

	s, err := h.controller.CreateSession(r.Context(), session.CreateSessionRequest{
		Name:           req.Name,
		PlayerIDs:      toPlayerIDs(req.PlayerIDs),
		SessionMinutes: req.SessionMinutes,
		MatchMinutes:   req.MatchMinutes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/sessions/"+string(s.ID), response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.controller.ListSessions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionSummariesFromModel(sessions))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// UpdateStatus handles PATCH /api/v1/sessions/{id}/status
func (h *SessionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	status := model.SessionStatus(req.Status)
	if !status.Valid() {
		WriteError(w, NewInvalidRequestError("status must be draft, in_progress or completed"))
		return
	}

	s, err := h.controller.UpdateStatus(r.Context(), sessionID(r), status)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteSession(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// StartMatch handles POST /api/v1/sessions/{id}/matches/{number}/start
func (h *SessionHandler) StartMatch(w http.ResponseWriter, r *http.Request) {
	number, err := matchNumber(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.controller.StartMatch(r.Context(), sessionID(r), number)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(*s.GetMatch(number)))
}

// RecordResult handles POST /api/v1/sessions/{id}/matches/{number}/result
func (h *SessionHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	number, err := matchNumber(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Team1Points == nil || req.Team2Points == nil {
		WriteError(w, NewInvalidRequestError("team1_points and team2_points are required"))
		return
	}

	result, err := h.controller.RecordResult(r.Context(), sessionID(r), number, *req.Team1Points, *req.Team2Points)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchResultFromService(result))
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

func matchNumber(r *http.Request) (int, error) {
	n, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil || n < 1 {
		return 0, NewInvalidRequestError("match number must be a positive integer")
	}
	return n, nil
}

func toPlayerIDs(ids []string) []model.PlayerID {
	out := make([]model.PlayerID, len(ids))
	for i, id := range ids {
		out[i] = model.PlayerID(id)
	}
	return out
}
