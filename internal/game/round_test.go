// internal/game/round_test.go
package game

import (
	"errors"
	"testing"
	"time"

	"github.com/wclam/hideseek/internal/models"
)

// setupRoundTeams designates one hider and one seeker team.
func setupRoundTeams(t *testing.T, g *Game) (hider, seeker *models.Team) {
	t.Helper()
	hider = g.CreateTeam("Hiders")
	seeker = g.CreateTeam("Seekers")
	if err := g.SetTeamRole(hider.ID, RoleHider); err != nil {
		t.Fatalf("set hider: %v", err)
	}
	if err := g.SetTeamRole(seeker.ID, RoleSeeker); err != nil {
		t.Fatalf("set seeker: %v", err)
	}
	return hider, seeker
}

func TestStartRoundPreconditions(t *testing.T) {
	g := newTestGame()

	if _, err := g.StartRound(); !errors.Is(err, ErrNoHider) {
		t.Fatalf("expected ErrNoHider, got %v", err)
	}

	hider := g.CreateTeam("Hiders")
	if err := g.SetTeamRole(hider.ID, RoleHider); err != nil {
		t.Fatalf("set hider: %v", err)
	}
	if _, err := g.StartRound(); !errors.Is(err, ErrNoSeekers) {
		t.Fatalf("expected ErrNoSeekers, got %v", err)
	}

	seeker := g.CreateTeam("Seekers")
	if err := g.SetTeamRole(seeker.ID, RoleSeeker); err != nil {
		t.Fatalf("set seeker: %v", err)
	}
	round, err := g.StartRound()
	if err != nil {
		t.Fatalf("start round: %v", err)
	}
	if round.RoundNumber != 1 || round.Status != models.RoundHiding {
		t.Fatalf("unexpected round: %+v", round)
	}

	if _, err := g.StartRound(); !errors.Is(err, ErrRoundActive) {
		t.Fatalf("expected ErrRoundActive, got %v", err)
	}
}

func TestSeekingPhaseTransitions(t *testing.T) {
	g := newTestGame()

	if err := g.StartSeekingPhase(); !errors.Is(err, ErrNoRound) {
		t.Fatalf("expected ErrNoRound, got %v", err)
	}

	setupRoundTeams(t, g)
	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if err := g.StartSeekingPhase(); err != nil {
		t.Fatalf("start seeking: %v", err)
	}
	if err := g.StartSeekingPhase(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestEndRoundRecordsHighWaterHidingTime(t *testing.T) {
	g := newTestGame()
	hider, _ := setupRoundTeams(t, g)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }

	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if err := g.StartSeekingPhase(); err != nil {
		t.Fatalf("start seeking: %v", err)
	}

	g.now = func() time.Time { return base.Add(90 * time.Second) }
	completed, err := g.EndRound()
	if err != nil {
		t.Fatalf("end round: %v", err)
	}
	if completed.Status != models.RoundCompleted || completed.EndTime == nil {
		t.Fatalf("round not completed: %+v", completed)
	}
	if got := g.Snapshot().TeamByID(hider.ID).HidingTimeSeconds; got != 90 {
		t.Fatalf("expected 90 hiding seconds, got %d", got)
	}

	// A worse run later must not lower the mark.
	if _, err := g.StartRound(); err != nil {
		t.Fatalf("second round: %v", err)
	}
	if err := g.StartSeekingPhase(); err != nil {
		t.Fatalf("second seeking: %v", err)
	}
	g.now = func() time.Time { return base.Add(90*time.Second + 30*time.Second) }
	if _, err := g.EndRound(); err != nil {
		t.Fatalf("second end: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).HidingTimeSeconds; got != 90 {
		t.Fatalf("high-water mark lowered to %d", got)
	}
}

func TestEndRoundDuringHidingRecordsNoTime(t *testing.T) {
	g := newTestGame()
	hider, _ := setupRoundTeams(t, g)

	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, err := g.EndRound(); err != nil {
		t.Fatalf("end round: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).HidingTimeSeconds; got != 0 {
		t.Fatalf("hiding time recorded without a seeking phase: %d", got)
	}
}

func TestRoundNumbersContinueAfterHistory(t *testing.T) {
	g := newTestGame()
	setupRoundTeams(t, g)

	for i := 1; i <= 3; i++ {
		round, err := g.StartRound()
		if err != nil {
			t.Fatalf("round %d start: %v", i, err)
		}
		if round.RoundNumber != i {
			t.Fatalf("expected round number %d, got %d", i, round.RoundNumber)
		}
		if _, err := g.EndRound(); err != nil {
			t.Fatalf("round %d end: %v", i, err)
		}
	}
	s := g.Snapshot()
	if len(s.GameHistory) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(s.GameHistory))
	}
	if s.CurrentRound != nil {
		t.Fatalf("current round not cleared")
	}
}

func TestRosterEditsDoNotReachRoundSnapshot(t *testing.T) {
	g := newTestGame()
	hider, _ := setupRoundTeams(t, g)
	p := g.AddPlayer("Ada")

	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if err := g.AssignPlayerToTeam(p.ID, hider.ID); err != nil {
		t.Fatalf("assign during round: %v", err)
	}

	s := g.Snapshot()
	if s.CurrentRound.HidingTeam.HasPlayer(p.ID) {
		t.Fatalf("round snapshot must not follow roster membership edits")
	}
	if !s.TeamByID(hider.ID).HasPlayer(p.ID) {
		t.Fatalf("roster team must have the new member")
	}
}
