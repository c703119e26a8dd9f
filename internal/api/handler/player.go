package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleplanner/internal/api/request"
	"github.com/mcoot/pickleplanner/internal/api/response"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	roster *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	player, err := h.roster.Create(r.Context(), roster.NewPlayer{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Gender:    model.Gender(req.Gender),
		Score:     req.Score,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/players/"+string(player.ID), response.PlayerFromModel(player))
}

// List handles GET /api/v1/players; ?sort=score orders by score, highest first
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy != "" && sortBy != "name" && sortBy != "score" {
		WriteError(w, NewInvalidRequestError("sort must be name or score"))
		return
	}

	players, err := h.roster.List(r.Context(), sortBy == "score")
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	player, err := h.roster.Get(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	upd := roster.PlayerUpdate{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Score:     req.Score,
	}
	if req.Gender != nil {
		g := model.Gender(*req.Gender)
		upd.Gender = &g
	}

	player, err := h.roster.Update(r.Context(), playerID(r), upd)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.Delete(r.Context(), playerID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}
