package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidConfiguration = errors.New("invalid session configuration")
	ErrDuplicatePlayer      = errors.New("duplicate player in pool")
	ErrInsufficientPlayers  = errors.New("insufficient players to generate a session")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidPlayer  = errors.New("invalid player")

	// Session errors
	ErrSessionNotFound         = errors.New("session not found")
	ErrInvalidStatusTransition = errors.New("invalid session status transition")
	ErrSessionCompleted        = errors.New("session is already completed")

	// Match errors
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchCompleted     = errors.New("match already has a result")
	ErrInvalidMatchPoints = errors.New("invalid match points")
)
