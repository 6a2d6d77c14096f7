package models

import "time"

// CurseResolutionStatus tracks how far the seeker-resolution workflow has
// advanced for the active curse.
type CurseResolutionStatus string

const (
	// CursePendingSeekerAction: the curse is live and waiting on the seekers
	// (a confirmation or a photo, per the curse rule).
	CursePendingSeekerAction CurseResolutionStatus = "pending_seeker_action"
	// CursePendingHiderAck: a seeker submitted a photo and the hider must
	// acknowledge it before the curse clears.
	CursePendingHiderAck CurseResolutionStatus = "pending_hider_acknowledgement"
)

// ActiveCurseInfo is the single curse in effect for the current round, if any.
// Created by activation, mutated by the resolution workflow, nilled on clear.
type ActiveCurseInfo struct {
	CurseID          int                   `json:"curseId"`
	StartTime        time.Time             `json:"startTime"`
	ResolutionStatus CurseResolutionStatus `json:"resolutionStatus"`
	HiderInputText   string                `json:"hiderInputText,omitempty"`

	// SeekerPhoto is the submitted proof for photo-class curses. Session-only;
	// stripped from every persistence write.
	SeekerPhoto []byte `json:"-"`
}

// Clone returns a copy of the active curse info. The photo bytes are shared,
// not copied; they are immutable once submitted.
func (c *ActiveCurseInfo) Clone() *ActiveCurseInfo {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
