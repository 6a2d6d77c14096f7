// internal/handlers/round.go
package handlers

import (
	"context"
	"net/http"

	"github.com/wclam/hideseek/internal/database"
)

// StartRoundHandler begins a new round from the current roster roles.
func StartRoundHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		round, err := gs.Game.StartRound()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, round)
	}
}

// StartSeekingHandler advances the round to the seeking phase.
func StartSeekingHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := gs.Game.StartSeekingPhase(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "seeking"})
	}
}

// EndRoundHandler completes the round and archives it, best-effort.
func EndRoundHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		completed, err := gs.Game.EndRound()
		if err != nil {
			writeGameError(w, err)
			return
		}

		go func() {
			if err := database.ArchiveRound(context.Background(), gs.Game.ID, completed); err != nil {
				gs.Logger.Warnf("failed to archive round %d: %v", completed.RoundNumber, err)
			}
		}()

		writeJSON(w, http.StatusOK, completed)
	}
}
