// internal/models/round.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// RoundStatus is the lifecycle state of a round.
type RoundStatus string

const (
	// RoundPending is the "no round yet" placeholder; a created round never
	// carries it — StartRound moves straight to RoundHiding.
	RoundPending   RoundStatus = "pending"
	RoundHiding    RoundStatus = "hiding-phase"
	RoundSeeking   RoundStatus = "seeking-phase"
	RoundCompleted RoundStatus = "completed"
)

// GameRound is one play cycle. HidingTeam and SeekingTeams are snapshots taken
// at round creation, not live references into the roster; economy operations
// write through to both copies so they never diverge.
type GameRound struct {
	RoundNumber    int              `json:"roundNumber"`
	HidingTeam     *Team            `json:"hidingTeam"`
	SeekingTeams   []Team           `json:"seekingTeams"`
	StartTime      time.Time        `json:"startTime"`
	PhaseStartTime time.Time        `json:"phaseStartTime"`
	EndTime        *time.Time       `json:"endTime,omitempty"`
	Status         RoundStatus      `json:"status"`
	AskedQuestions []AskedQuestion  `json:"askedQuestions"`
	ActiveCurse    *ActiveCurseInfo `json:"activeCurse,omitempty"`
}

// Clone returns a deep copy of the round.
func (r *GameRound) Clone() *GameRound {
	if r == nil {
		return nil
	}
	cp := *r
	cp.HidingTeam = r.HidingTeam.Clone()
	cp.SeekingTeams = make([]Team, len(r.SeekingTeams))
	for i := range r.SeekingTeams {
		cp.SeekingTeams[i] = *r.SeekingTeams[i].Clone()
	}
	if r.EndTime != nil {
		t := *r.EndTime
		cp.EndTime = &t
	}
	cp.AskedQuestions = make([]AskedQuestion, len(r.AskedQuestions))
	copy(cp.AskedQuestions, r.AskedQuestions)
	cp.ActiveCurse = r.ActiveCurse.Clone()
	return &cp
}

// AskedQuestion is one seeker probe logged against a round. It is created
// unanswered and mutated exactly once to attach a response; never deleted.
type AskedQuestion struct {
	ID               uuid.UUID        `json:"id"`
	QuestionOptionID string           `json:"questionOptionId"`
	Category         QuestionCategory `json:"category"`
	Text             string           `json:"text"`

	// ResponseText holds a textual answer, if one was given.
	ResponseText string `json:"responseText,omitempty"`
	// ResponsePhoto holds a binary answer. It lives only in memory for the
	// current session and is never persisted.
	ResponsePhoto []byte `json:"-"`
	Answered      bool   `json:"answered"`

	Timestamp    time.Time `json:"timestamp"`
	AskingTeamID uuid.UUID `json:"askingTeamId"`
}
