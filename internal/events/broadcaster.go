package events

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/pickleplanner/internal/api/response"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// Event names sent on a session stream
const (
	EventConnected      = "connected"
	EventMatchStarted   = "match_started"
	EventMatchCompleted = "match_completed"
	EventSessionStatus  = "session_status"
	EventSessionDeleted = "session_deleted"
)

// StatusChange is the payload of a session_status event
type StatusChange struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// Broadcaster publishes session changes to the session's stream clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

var _ session.Notifier = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "events-broadcaster")),
	}
}

// MatchStarted sends the started match
func (b *Broadcaster) MatchStarted(s *model.Session, m model.Match) {
	b.send(s.ID, EventMatchStarted, response.MatchFromModel(m))
}

// MatchCompleted sends the match result and rating changes
func (b *Broadcaster) MatchCompleted(r *session.MatchResult) {
	b.send(r.Session.ID, EventMatchCompleted, response.MatchResultFromService(r))
}

// StatusChanged sends the session's new status
func (b *Broadcaster) StatusChanged(s *model.Session) {
	b.send(s.ID, EventSessionStatus, StatusChange{
		SessionID: string(s.ID),
		Status:    string(s.Status),
	})
}

// SessionDeleted tells clients the session is gone and closes its hub
func (b *Broadcaster) SessionDeleted(id model.SessionID) {
	b.send(id, EventSessionDeleted, StatusChange{SessionID: string(id), Status: "deleted"})
	b.hubManager.RemoveHub(id)
}

func (b *Broadcaster) send(id model.SessionID, event string, payload any) {
	hub := b.hubManager.GetHub(id)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("failed to encode event",
			slog.String("session_id", string(id)),
			slog.String("event", event),
			slog.String("error", err.Error()))
		return
	}
	hub.BroadcastEvent(event, string(data))
}
