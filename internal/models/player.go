package models

import "github.com/google/uuid"

// Player is a roster entry. Players are created once and never mutated;
// removing a player from play means dereferencing them from a team, not
// deleting the roster entry.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
