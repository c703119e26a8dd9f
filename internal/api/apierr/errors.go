package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/pickleplanner/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest          = "INVALID_REQUEST"
	CodeInvalidConfiguration    = "INVALID_CONFIGURATION"
	CodeInvalidPlayer           = "INVALID_PLAYER"
	CodeDuplicatePlayer         = "DUPLICATE_PLAYER"
	CodeInsufficientPlayers     = "INSUFFICIENT_PLAYERS"
	CodePlayerNotFound          = "PLAYER_NOT_FOUND"
	CodeSessionNotFound         = "SESSION_NOT_FOUND"
	CodeMatchNotFound           = "MATCH_NOT_FOUND"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeSessionCompleted        = "SESSION_COMPLETED"
	CodeMatchCompleted          = "MATCH_COMPLETED"
	CodeInvalidMatchPoints      = "INVALID_MATCH_POINTS"
	CodeNotFound                = "NOT_FOUND"
	CodeInternalError           = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError.
// Validation errors carry their wrapped detail as the message.
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidConfiguration):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfiguration, err.Error()}}
	case errors.Is(err, model.ErrInvalidPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, err.Error()}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicatePlayer, err.Error()}}
	case errors.Is(err, model.ErrInvalidMatchPoints):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMatchPoints, err.Error()}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInsufficientPlayers, err.Error()}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrInvalidStatusTransition):
		return &httpError{http.StatusConflict, APIError{CodeInvalidStatusTransition, err.Error()}}
	case errors.Is(err, model.ErrSessionCompleted):
		return &httpError{http.StatusConflict, APIError{CodeSessionCompleted, "Session is already completed"}}
	case errors.Is(err, model.ErrMatchCompleted):
		return &httpError{http.StatusConflict, APIError{CodeMatchCompleted, "Match already has a result"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a route not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
