// internal/game/scenario_test.go
package game

import (
	"testing"
	"time"

	"github.com/wclam/hideseek/internal/models"
)

// TestFullRoundScenario plays one round end to end with a deterministic
// clock and die: two seeker questions fund the hider, the hider buys and
// runs a curse through its full resolution, and the round lands in history
// with the hiding time recorded.
func TestFullRoundScenario(t *testing.T) {
	g := newTestGame()
	hider, seeker := setupRoundTeams(t, g)

	base := time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)
	clock := base
	g.now = func() time.Time { return clock }
	g.roll = func() int { return 3 }

	round, err := g.StartRound()
	if err != nil {
		t.Fatalf("start round: %v", err)
	}
	if round.HidingTeam.Coins != 0 {
		t.Fatalf("hider must start broke, has %d", round.HidingTeam.Coins)
	}

	if err := g.StartSeekingPhase(); err != nil {
		t.Fatalf("start seeking: %v", err)
	}

	// Two questions bring the hider to exactly the curse cost.
	if _, err := g.AskQuestion("radar-1km", seeker.ID); err != nil {
		t.Fatalf("radar question: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).Coins; got != 30 {
		t.Fatalf("after radar: want 30 coins, got %d", got)
	}
	if _, err := g.AskQuestion("thermo-closer", seeker.ID); err != nil {
		t.Fatalf("thermometer question: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).Coins; got != 50 {
		t.Fatalf("after thermometer: want 50 coins, got %d", got)
	}

	// Purchase, roll, activate. Die is pinned to 3, which needs no hider
	// input and no dedicated proof from the seekers.
	if err := g.PurchaseCurse(hider.ID); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).Coins; got != 0 {
		t.Fatalf("after purchase: want 0 coins, got %d", got)
	}
	rule, err := g.RollCurse(hider.ID)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if rule.Number != 3 {
		t.Fatalf("want curse 3, got %d", rule.Number)
	}
	if _, err := g.ActivateCurse(hider.ID, ""); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if got := g.Snapshot().TeamByID(hider.ID).CursesUsed; got != 1 {
		t.Fatalf("want 1 curse used, got %d", got)
	}
	if err := g.ConfirmCurse(seeker.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// The seekers find the hider 42 seconds into the seeking phase.
	clock = base.Add(42 * time.Second)
	completed, err := g.EndRound()
	if err != nil {
		t.Fatalf("end round: %v", err)
	}

	s := g.Snapshot()
	if s.CurrentRound != nil {
		t.Fatalf("current round not cleared")
	}
	if len(s.GameHistory) != 1 {
		t.Fatalf("want 1 history entry, got %d", len(s.GameHistory))
	}
	archived := s.GameHistory[0]
	if archived.Status != models.RoundCompleted {
		t.Fatalf("archived status %q", archived.Status)
	}
	if archived.HidingTeam.HidingTimeSeconds != 42 {
		t.Fatalf("want 42 hiding seconds in the archive, got %d", archived.HidingTeam.HidingTimeSeconds)
	}
	if got := s.TeamByID(hider.ID).HidingTimeSeconds; got != 42 {
		t.Fatalf("want 42 hiding seconds on the roster, got %d", got)
	}
	if len(archived.AskedQuestions) != 2 {
		t.Fatalf("want 2 archived questions, got %d", len(archived.AskedQuestions))
	}
	if completed.EndTime == nil || !completed.EndTime.Equal(clock) {
		t.Fatalf("end time not stamped from the clock")
	}
}
