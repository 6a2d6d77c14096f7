// internal/models/team.go
package models

import "github.com/google/uuid"

// Team is a named group of players plus its role designation and economic
// state. Coins and HidingTimeSeconds survive across rounds on the roster
// record; the round keeps its own snapshot copy.
type Team struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Players []Player  `json:"players"`

	IsHiding  bool `json:"isHiding"`
	IsSeeking bool `json:"isSeeking"`

	Coins int `json:"coins"`

	// HidingTimeSeconds is the team's best (longest) hiding run, a high-water
	// mark raised only when a round ends.
	HidingTimeSeconds int `json:"hidingTimeSeconds"`

	// CursesUsed counts activations in the current round.
	CursesUsed int `json:"cursesUsed"`
}

// HasPlayer reports whether the player is a member of this team.
func (t *Team) HasPlayer(playerID uuid.UUID) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the team.
func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Players = make([]Player, len(t.Players))
	copy(cp.Players, t.Players)
	return &cp
}
