package request

// CreatePlayerRequest is the request body for adding a player to the roster
type CreatePlayerRequest struct {
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Gender    string   `json:"gender"`
	Score     *float64 `json:"score,omitempty"`
}

// UpdatePlayerRequest is the request body for editing a player; omitted fields are unchanged
type UpdatePlayerRequest struct {
	Name      *string  `json:"name,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}

// PreviewRequest is the request body for generating a schedule without saving it
type PreviewRequest struct {
	PlayerIDs      []string `json:"player_ids"`
	SessionMinutes int      `json:"session_minutes"`
	MatchMinutes   int      `json:"match_minutes"`
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Name           string   `json:"name,omitempty"`
	PlayerIDs      []string `json:"player_ids"`
	SessionMinutes int      `json:"session_minutes"`
	MatchMinutes   int      `json:"match_minutes"`
}

// UpdateStatusRequest is the request body for moving a session through its lifecycle
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RecordResultRequest is the request body for recording a match result
type RecordResultRequest struct {
	Team1Points *int `json:"team1_points"`
	Team2Points *int `json:"team2_points"`
}
