// internal/models/gamestate.go
package models

import "github.com/google/uuid"

// GameState is the top-level envelope owning every piece of mutable game
// state. It is the unit of persistence: the whole envelope is saved after each
// accepted mutation and loaded back on startup. Binary attachment fields are
// tagged `json:"-"` so they are stripped on save and come back absent after a
// reload.
type GameState struct {
	Players      []Player    `json:"players"`
	Teams        []*Team     `json:"teams"`
	CurrentRound *GameRound  `json:"currentRound,omitempty"`
	GameHistory  []GameRound `json:"gameHistory"`

	MapURL string `json:"mtrMapUrl,omitempty"`

	// PIN slots hold argon2id hashes of the configured PINs. An empty slot
	// means the role requires no PIN.
	AdminPINHash  string `json:"adminPinHash,omitempty"`
	HiderPINHash  string `json:"hiderPinHash,omitempty"`
	SeekerPINHash string `json:"seekerPinHash,omitempty"`

	// Session authentication flags, one per role.
	AdminAuthed  bool `json:"adminAuthed"`
	HiderAuthed  bool `json:"hiderAuthed"`
	SeekerAuthed bool `json:"seekerAuthed"`
}

// NewGameState returns the default, empty envelope used on first run and as
// the fallback when persisted state fails to load.
func NewGameState() *GameState {
	return &GameState{
		Players:     []Player{},
		Teams:       []*Team{},
		GameHistory: []GameRound{},
	}
}

// Clone returns a deep copy of the envelope. Mutations snapshot the envelope
// under the core's lock and hand the copy to the persistence and journal
// layers, so those never observe a half-applied transition.
func (s *GameState) Clone() *GameState {
	cp := *s
	cp.Players = make([]Player, len(s.Players))
	copy(cp.Players, s.Players)
	cp.Teams = make([]*Team, len(s.Teams))
	for i, t := range s.Teams {
		cp.Teams[i] = t.Clone()
	}
	cp.CurrentRound = s.CurrentRound.Clone()
	cp.GameHistory = make([]GameRound, len(s.GameHistory))
	for i := range s.GameHistory {
		cp.GameHistory[i] = *s.GameHistory[i].Clone()
	}
	return &cp
}

// TeamByID returns the roster team with the given id, or nil.
func (s *GameState) TeamByID(id uuid.UUID) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}
