// internal/database/gamestate.go
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wclam/hideseek/internal/models"
)

// SaveGameState upserts the whole envelope as one JSON document. Binary
// attachment fields carry `json:"-"` tags, so they are stripped by the
// marshal itself; nothing session-only ever reaches the row.
func SaveGameState(ctx context.Context, sessionID uuid.UUID, state *models.GameState) error {
	if DB == nil {
		return fmt.Errorf("no database connection")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO game_states (session_id, state, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (session_id)
			DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
		`
		_, e := tx.Exec(ctx, q, sessionID, data)
		return e
	})
}

// LoadGameState reads the envelope back. Any failure — no connection, missing
// row, corrupt JSON — yields the default empty envelope instead of an error
// the caller would have to handle; startup never fails on bad persisted
// state. Timestamp fields revive through the JSON round-trip and binary
// fields come back absent.
func LoadGameState(ctx context.Context, sessionID uuid.UUID) *models.GameState {
	if DB == nil {
		return models.NewGameState()
	}

	var data []byte
	q := `SELECT state FROM game_states WHERE session_id = $1`
	if err := DB.QueryRow(ctx, q, sessionID).Scan(&data); err != nil {
		return models.NewGameState()
	}

	state := models.NewGameState()
	if err := json.Unmarshal(data, state); err != nil {
		return models.NewGameState()
	}
	return state
}

// ArchiveRound records a completed round for reporting, best-effort.
func ArchiveRound(ctx context.Context, sessionID uuid.UUID, round *models.GameRound) error {
	if DB == nil {
		return fmt.Errorf("no database connection")
	}
	data, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	hidingTeam := ""
	if round.HidingTeam != nil {
		hidingTeam = round.HidingTeam.Name
	}

	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO rounds (session_id, round_number, hiding_team, started_at, ended_at, detail)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (session_id, round_number) DO NOTHING
		`
		_, e := tx.Exec(ctx, q, sessionID, round.RoundNumber, hidingTeam, round.StartTime, round.EndTime, data)
		return e
	})
}
