// internal/game/errors.go
package game

import "errors"

// Precondition violations. Every one of these leaves the envelope untouched;
// callers surface the message to the user and carry on.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrHiderTaken     = errors.New("another team is already hiding")

	ErrRoundActive = errors.New("a round is already in progress")
	ErrNoRound     = errors.New("no round is in progress")
	ErrNoHider     = errors.New("exactly one team must be designated as hider")
	ErrNoSeekers   = errors.New("at least one team must be designated as seeker")
	ErrWrongPhase  = errors.New("round is not in the required phase")

	ErrNotHidingTeam       = errors.New("team is not the hiding team of the current round")
	ErrNotSeekingTeam      = errors.New("team is not a seeking team of the current round")
	ErrQuestionNotFound    = errors.New("question not found in the current round")
	ErrQuestionUnavailable = errors.New("question is not available right now")
	ErrAlreadyAnswered     = errors.New("question already has a response")

	ErrInsufficientCoins  = errors.New("not enough coins")
	ErrCurseLimitReached  = errors.New("curse limit for this round reached")
	ErrCurseActive        = errors.New("a curse is already active")
	ErrPurchasePending    = errors.New("a curse purchase is already pending")
	ErrNoPurchasePending  = errors.New("no curse purchase is pending")
	ErrNoRollPending      = errors.New("no rolled curse is awaiting activation")
	ErrHiderTextRequired  = errors.New("this curse requires input text from the hider")
	ErrNoActiveCurse      = errors.New("no curse is active")
	ErrPhotoRequired      = errors.New("this curse is resolved with a photo, not a confirmation")
	ErrPhotoNotApplicable = errors.New("this curse does not take a photo response")
	ErrAwaitingHiderAck   = errors.New("curse is awaiting the hider's acknowledgement")
	ErrNoHiderAckPending  = errors.New("no photo is awaiting the hider's acknowledgement")

	ErrInvalidPIN      = errors.New("incorrect PIN")
	ErrNoPINConfigured = errors.New("no PIN is configured for this role")
	ErrUnknownRole     = errors.New("unknown access role")
)
