// internal/handlers/curse.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

type curseTeamRequest struct {
	TeamID uuid.UUID `json:"teamId"`
}

// PurchaseCurseHandler pays the curse-dice cost up front.
func PurchaseCurseHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req curseTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid purchase payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.PurchaseCurse(req.TeamID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "purchased"})
	}
}

// RollCurseHandler rolls the die against a pending purchase.
func RollCurseHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req curseTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid roll payload", http.StatusBadRequest)
			return
		}
		rule, err := gs.Game.RollCurse(req.TeamID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rule)
	}
}

type activateCurseRequest struct {
	TeamID    uuid.UUID `json:"teamId"`
	HiderText string    `json:"hiderText,omitempty"`
}

// ActivateCurseHandler puts the rolled curse into effect.
func ActivateCurseHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req activateCurseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid activation payload", http.StatusBadRequest)
			return
		}
		info, err := gs.Game.ActivateCurse(req.TeamID, req.HiderText)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

// ConfirmCurseHandler resolves a confirmation-class curse from the seeker side.
func ConfirmCurseHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req curseTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid confirmation payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.ConfirmCurse(req.TeamID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

type cursePhotoRequest struct {
	TeamID uuid.UUID `json:"teamId"`
	Photo  []byte    `json:"photo"`
}

// SubmitCursePhotoHandler attaches seeker photo proof to a photo-class curse.
func SubmitCursePhotoHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req cursePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid photo payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.SubmitCursePhoto(req.TeamID, req.Photo); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "pending_hider_acknowledgement"})
	}
}

// AcknowledgeCursePhotoHandler is the hider's final sign-off on photo proof.
func AcknowledgeCursePhotoHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := gs.Game.AcknowledgeCursePhoto(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
