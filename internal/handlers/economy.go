// internal/handlers/economy.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/catalog"
)

type askQuestionRequest struct {
	OptionID     string    `json:"optionId"`
	AskingTeamID uuid.UUID `json:"askingTeamId"`
}

// AskQuestionHandler logs a seeker question and credits the hider its reward.
func AskQuestionHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req askQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OptionID == "" {
			http.Error(w, "invalid question payload", http.StatusBadRequest)
			return
		}
		q, err := gs.Game.AskQuestion(req.OptionID, req.AskingTeamID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

type answerQuestionRequest struct {
	QuestionID uuid.UUID `json:"questionId"`
	Text       string    `json:"text,omitempty"`

	// Photo is base64 over JSON; the bytes never reach persistence.
	Photo []byte `json:"photo,omitempty"`
}

// AnswerQuestionHandler attaches the hider's one-shot response.
func AnswerQuestionHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req answerQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid answer payload", http.StatusBadRequest)
			return
		}
		if err := gs.Game.AnswerQuestion(req.QuestionID, req.Text, req.Photo); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type adjustCoinsRequest struct {
	TeamID uuid.UUID `json:"teamId"`
	Delta  int       `json:"delta"`
}

// AdjustCoinsHandler applies a manual balance correction.
func AdjustCoinsHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req adjustCoinsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid adjustment payload", http.StatusBadRequest)
			return
		}
		balance, err := gs.Game.AdjustCoins(req.TeamID, req.Delta)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"balance": balance})
	}
}

// ListQuestionsHandler returns the catalog entries currently askable, with the
// round-gated options filtered against the live round.
func ListQuestionsHandler(gs *GameServer) http.HandlerFunc {
	type questionView struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Text     string `json:"text"`
		Reward   int    `json:"reward"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snapshot := gs.Game.Snapshot()
		out := []questionView{}
		for _, opt := range catalog.Questions {
			if opt.Available != nil && !opt.Available(snapshot.CurrentRound) {
				continue
			}
			out = append(out, questionView{
				ID:       opt.ID,
				Category: string(opt.Category),
				Text:     opt.Text,
				Reward:   opt.Reward,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
