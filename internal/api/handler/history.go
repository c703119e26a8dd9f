package handler

import (
	"net/http"
	"strconv"

	"github.com/mcoot/pickleplanner/internal/api/response"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// HistoryHandler lists matches across sessions
type HistoryHandler struct {
	controller *session.Controller
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(controller *session.Controller) *HistoryHandler {
	return &HistoryHandler{
		controller: controller,
	}
}

// PlayerMatches handles GET /api/v1/players/{id}/matches
func (h *HistoryHandler) PlayerMatches(w http.ResponseWriter, r *http.Request) {
	records, err := h.controller.PlayerHistory(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchRecordsFromService(records))
}

// Recent handles GET /api/v1/matches/recent?limit=n
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := h.controller.RecentMatches(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchRecordsFromService(records))
}

// Active handles GET /api/v1/matches/active
func (h *HistoryHandler) Active(w http.ResponseWriter, r *http.Request) {
	records, err := h.controller.ActiveMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchRecordsFromService(records))
}
