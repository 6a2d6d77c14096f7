// internal/game/roster_test.go
package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/config"
)

func newTestGame() *Game {
	cfg := config.Game{
		CurseCost:         50,
		MaxCursesPerRound: 3,
		StartingCoins:     0,
		DefaultAdminPIN:   "1234",
	}
	return New(cfg, nil)
}

func TestAddPlayerAlwaysSucceeds(t *testing.T) {
	g := newTestGame()

	a := g.AddPlayer("Ada")
	b := g.AddPlayer("Ada") // duplicate names are fine
	if a.ID == b.ID {
		t.Fatalf("player ids must be unique")
	}
	if len(g.Snapshot().Players) != 2 {
		t.Fatalf("expected 2 roster players")
	}
}

func TestAssignMovesPlayerBetweenTeams(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Ada")
	t1 := g.CreateTeam("Foxes")
	t2 := g.CreateTeam("Owls")

	if err := g.AssignPlayerToTeam(p.ID, t1.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := g.AssignPlayerToTeam(p.ID, t2.ID); err != nil {
		t.Fatalf("reassign: %v", err)
	}

	s := g.Snapshot()
	if s.TeamByID(t1.ID).HasPlayer(p.ID) {
		t.Fatalf("player still on the old team")
	}
	if !s.TeamByID(t2.ID).HasPlayer(p.ID) {
		t.Fatalf("player missing from the new team")
	}

	// Idempotent when already a member.
	if err := g.AssignPlayerToTeam(p.ID, t2.ID); err != nil {
		t.Fatalf("idempotent assign: %v", err)
	}
	if n := len(g.Snapshot().TeamByID(t2.ID).Players); n != 1 {
		t.Fatalf("expected 1 membership, got %d", n)
	}
}

func TestAssignUnknownIDs(t *testing.T) {
	g := newTestGame()
	team := g.CreateTeam("Foxes")

	err := g.AssignPlayerToTeam(uuid.New(), team.ID)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	p := g.AddPlayer("Ada")
	err = g.AssignPlayerToTeam(p.ID, uuid.New())
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestRemovePlayerIsNoOpWhenAbsent(t *testing.T) {
	g := newTestGame()
	p := g.AddPlayer("Ada")
	team := g.CreateTeam("Foxes")

	if err := g.RemovePlayerFromTeam(p.ID, team.ID); err != nil {
		t.Fatalf("remove absent member: %v", err)
	}
	if len(g.Snapshot().Players) != 1 {
		t.Fatalf("roster entry must survive team removal")
	}
}

func TestSingleHiderEnforced(t *testing.T) {
	g := newTestGame()
	t1 := g.CreateTeam("Foxes")
	t2 := g.CreateTeam("Owls")

	if err := g.SetTeamRole(t1.ID, RoleHider); err != nil {
		t.Fatalf("first hider: %v", err)
	}
	err := g.SetTeamRole(t2.ID, RoleHider)
	if !errors.Is(err, ErrHiderTaken) {
		t.Fatalf("expected ErrHiderTaken, got %v", err)
	}

	// Re-designating the same team is fine.
	if err := g.SetTeamRole(t1.ID, RoleHider); err != nil {
		t.Fatalf("re-set same hider: %v", err)
	}

	// After the first team steps down, the role is free.
	if err := g.SetTeamRole(t1.ID, RoleSeeker); err != nil {
		t.Fatalf("step down: %v", err)
	}
	if err := g.SetTeamRole(t2.ID, RoleHider); err != nil {
		t.Fatalf("second team takes hider: %v", err)
	}
}

func TestHiderRoleResetsCurseCount(t *testing.T) {
	g := newTestGame()
	team := g.CreateTeam("Foxes")
	g.Mu.Lock()
	g.State.Teams[0].CursesUsed = 2
	g.State.Teams[0].Coins = 80
	g.Mu.Unlock()

	if err := g.SetTeamRole(team.ID, RoleHider); err != nil {
		t.Fatalf("set hider: %v", err)
	}
	s := g.Snapshot().TeamByID(team.ID)
	if s.CursesUsed != 0 {
		t.Fatalf("cursesUsed not reset, got %d", s.CursesUsed)
	}
	if s.Coins != 80 {
		t.Fatalf("non-zero balance must be kept, got %d", s.Coins)
	}
}
