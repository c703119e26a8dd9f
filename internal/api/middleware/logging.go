package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
	"github.com/mcoot/pickleplanner/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags API requests with an id that appears in the logs and response headers
func RequestID(gen ids.Generator) func(http.Handler) http.Handler {
	return middleware.RequestID(gen)
}
