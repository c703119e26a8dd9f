package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleplanner/internal/api/apierr"
	"github.com/mcoot/pickleplanner/internal/api/handler"
	"github.com/mcoot/pickleplanner/internal/api/middleware"
	"github.com/mcoot/pickleplanner/internal/api/response"
	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
	"github.com/mcoot/pickleplanner/internal/events"
	"github.com/mcoot/pickleplanner/internal/services/roster"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	Roster            *roster.Service
	SessionController *session.Controller
	// Events serves live session streams; the route is omitted when nil
	Events *events.HubManager
	// RequestIDs generates request ids; defaults to UUIDs
	RequestIDs ids.Generator
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	requestIDs := cfg.RequestIDs
	if requestIDs == nil {
		requestIDs = ids.New()
	}

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Roster)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	historyHandler := handler.NewHistoryHandler(cfg.SessionController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID(requestIDs))
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/matches", historyHandler.PlayerMatches).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/sessions/preview", sessionHandler.Preview).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/status", sessionHandler.UpdateStatus).Methods(http.MethodPatch)

	// Match routes
	api.HandleFunc("/sessions/{id}/matches/{number}/start", sessionHandler.StartMatch).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/matches/{number}/result", sessionHandler.RecordResult).Methods(http.MethodPost)
	api.HandleFunc("/matches/recent", historyHandler.Recent).Methods(http.MethodGet)
	api.HandleFunc("/matches/active", historyHandler.Active).Methods(http.MethodGet)

	// Live session updates
	if cfg.Events != nil {
		eventsHandler := handler.NewEventsHandler(cfg.SessionController, cfg.Events)
		api.HandleFunc("/sessions/{id}/events", eventsHandler.Stream).Methods(http.MethodGet)
	}

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
