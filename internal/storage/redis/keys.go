package redis

import (
	"fmt"

	"github.com/mcoot/pickleplanner/internal/model"
)

// Key prefix for all planner data
const keyPrefix = "pickle"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player ids
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session ids
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
