package handler

import (
	"net/http"

	"github.com/mcoot/pickleplanner/internal/events"
	"github.com/mcoot/pickleplanner/internal/middleware"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// EventsHandler streams live session updates
type EventsHandler struct {
	controller *session.Controller
	hubs       *events.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller *session.Controller, hubs *events.HubManager) *EventsHandler {
	return &EventsHandler{
		controller: controller,
		hubs:       hubs,
	}
}

// Stream handles GET /api/v1/sessions/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if _, err := h.controller.GetSession(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	events.ServeSSE(w, r, h.hubs.GetOrCreateHub(id), middleware.GetRequestID(r.Context()))
	h.hubs.CleanupEmptyHubs()
}
