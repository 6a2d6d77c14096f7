// internal/game/round.go
package game

import (
	"fmt"

	"github.com/wclam/hideseek/internal/models"
)

// StartRound begins a new round. Preconditions: no round currently active,
// exactly one team designated hider, at least one seeker. The hider and all
// seekers are snapshotted into the round; later roster edits do not reach the
// round except through the economy write-through.
func (g *Game) StartRound() (*models.GameRound, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.State.CurrentRound != nil {
		return nil, fmt.Errorf("start round: %w", ErrRoundActive)
	}

	var hider *models.Team
	seekers := []models.Team{}
	for _, t := range g.State.Teams {
		if t.IsHiding {
			hider = t
		}
		if t.IsSeeking {
			seekers = append(seekers, *t.Clone())
		}
	}
	if hider == nil {
		return nil, fmt.Errorf("start round: %w", ErrNoHider)
	}
	if len(seekers) == 0 {
		return nil, fmt.Errorf("start round: %w", ErrNoSeekers)
	}

	// Round-start reset on the roster record, then snapshot it.
	hider.CursesUsed = 0
	if hider.Coins == 0 {
		hider.Coins = g.Cfg.StartingCoins
	}

	lastNumber := 0
	if n := len(g.State.GameHistory); n > 0 {
		lastNumber = g.State.GameHistory[n-1].RoundNumber
	}

	now := g.now()
	round := &models.GameRound{
		RoundNumber:    lastNumber + 1,
		HidingTeam:     hider.Clone(),
		SeekingTeams:   seekers,
		StartTime:      now,
		PhaseStartTime: now,
		Status:         models.RoundHiding,
		AskedQuestions: []models.AskedQuestion{},
	}
	g.State.CurrentRound = round
	g.cursePurchasePending = false
	g.pendingCurse = nil

	g.commit(hider.ID, GameEvent{
		Type: EventRoundStarted,
		Payload: map[string]interface{}{
			"roundNumber": round.RoundNumber,
			"hidingTeam":  hider.Name,
			"seekers":     len(seekers),
		},
	})
	return round.Clone(), nil
}

// StartSeekingPhase advances the round from the hiding phase to the seeking
// phase and restarts the phase clock. State is left unchanged when no round
// exists or the round is not hiding.
func (g *Game) StartSeekingPhase() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("start seeking phase: %w", ErrNoRound)
	}
	if round.Status != models.RoundHiding {
		return fmt.Errorf("start seeking phase: %w (status %s)", ErrWrongPhase, round.Status)
	}

	round.Status = models.RoundSeeking
	round.PhaseStartTime = g.now()

	g.commit(round.HidingTeam.ID, GameEvent{
		Type: EventSeekingStarted,
		Payload: map[string]interface{}{
			"roundNumber": round.RoundNumber,
		},
	})
	return nil
}

// EndRound completes the current round: stamps the end time, records the
// hider's best hiding time from the live phase clock, appends an immutable
// copy to history, and clears the current-round slot. This is the single
// point where the cross-round hidingTimeSeconds high-water mark is raised.
func (g *Game) EndRound() (*models.GameRound, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return nil, fmt.Errorf("end round: %w", ErrNoRound)
	}

	now := g.now()
	hidingSeconds := 0
	if round.Status == models.RoundSeeking {
		hidingSeconds = int(now.Sub(round.PhaseStartTime).Seconds())
		if team := g.teamByID(round.HidingTeam.ID); team != nil {
			if hidingSeconds > team.HidingTimeSeconds {
				team.HidingTimeSeconds = hidingSeconds
			}
		}
		g.syncHiderSnapshot()
	}

	round.EndTime = &now
	round.Status = models.RoundCompleted

	completed := round.Clone()
	g.State.GameHistory = append(g.State.GameHistory, *completed)
	g.State.CurrentRound = nil
	g.cursePurchasePending = false
	g.pendingCurse = nil

	g.commit(round.HidingTeam.ID, GameEvent{
		Type: EventRoundEnded,
		Payload: map[string]interface{}{
			"roundNumber":   completed.RoundNumber,
			"hidingSeconds": hidingSeconds,
		},
	})
	return completed.Clone(), nil
}
