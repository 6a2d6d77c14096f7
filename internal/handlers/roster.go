// internal/handlers/roster.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/game"
)

type addPlayerRequest struct {
	Name string `json:"name"`
}

// AddPlayerHandler registers a new roster player.
func AddPlayerHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req addPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			http.Error(w, "invalid player payload", http.StatusBadRequest)
			return
		}
		p := gs.Game.AddPlayer(req.Name)
		writeJSON(w, http.StatusOK, p)
	}
}

type createTeamRequest struct {
	Name string `json:"name"`
}

// CreateTeamHandler creates an empty team with no role and no coins.
func CreateTeamHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req createTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			http.Error(w, "invalid team payload", http.StatusBadRequest)
			return
		}
		t := gs.Game.CreateTeam(req.Name)
		writeJSON(w, http.StatusOK, t)
	}
}

type assignPlayerRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
	TeamID   uuid.UUID `json:"teamId"`
}

// AssignPlayerHandler moves a player onto a team, off any previous one.
func AssignPlayerHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req assignPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid assignment payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.AssignPlayerToTeam(req.PlayerID, req.TeamID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// RemovePlayerHandler drops a player from a team's list.
func RemovePlayerHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req assignPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid removal payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.RemovePlayerFromTeam(req.PlayerID, req.TeamID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type setTeamRoleRequest struct {
	TeamID uuid.UUID `json:"teamId"`
	Role   string    `json:"role"`
}

// SetTeamRoleHandler designates a team hider, seeker, or neither.
func SetTeamRoleHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req setTeamRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid role payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.SetTeamRole(req.TeamID, game.TeamRole(req.Role)); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
