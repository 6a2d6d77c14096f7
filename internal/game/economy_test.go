// internal/game/economy_test.go
package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAskQuestionCreditsHider(t *testing.T) {
	g := newTestGame()
	hider, seeker := setupRoundTeams(t, g)
	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}

	q, err := g.AskQuestion("radar-1km", seeker.ID)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if q.AskingTeamID != seeker.ID {
		t.Fatalf("asker not recorded")
	}

	s := g.Snapshot()
	if got := s.TeamByID(hider.ID).Coins; got != 30 {
		t.Fatalf("expected 30 coins on the roster record, got %d", got)
	}
	if got := s.CurrentRound.HidingTeam.Coins; got != 30 {
		t.Fatalf("expected 30 coins on the round snapshot, got %d", got)
	}
	if len(s.CurrentRound.AskedQuestions) != 1 {
		t.Fatalf("question not logged")
	}
}

func TestAskQuestionRejections(t *testing.T) {
	g := newTestGame()
	hider, seeker := setupRoundTeams(t, g)

	if _, err := g.AskQuestion("radar-1km", seeker.ID); !errors.Is(err, ErrNoRound) {
		t.Fatalf("expected ErrNoRound, got %v", err)
	}
	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	if _, err := g.AskQuestion("no-such-option", seeker.ID); err == nil {
		t.Fatalf("unknown option accepted")
	}
	if _, err := g.AskQuestion("radar-1km", hider.ID); !errors.Is(err, ErrNotSeekingTeam) {
		t.Fatalf("expected ErrNotSeekingTeam, got %v", err)
	}

	// Photo questions are seeking-phase only.
	if _, err := g.AskQuestion("photo-street", seeker.ID); !errors.Is(err, ErrQuestionUnavailable) {
		t.Fatalf("expected ErrQuestionUnavailable during hiding, got %v", err)
	}
	if err := g.StartSeekingPhase(); err != nil {
		t.Fatalf("start seeking: %v", err)
	}
	if _, err := g.AskQuestion("photo-street", seeker.ID); err != nil {
		t.Fatalf("photo question during seeking: %v", err)
	}
}

func TestAnswerQuestionOneShot(t *testing.T) {
	g := newTestGame()
	_, seeker := setupRoundTeams(t, g)
	if _, err := g.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	q, err := g.AskQuestion("thermo-closer", seeker.ID)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	if err := g.AnswerQuestion(uuid.New(), "x", nil); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if err := g.AnswerQuestion(q.ID, "warmer", nil); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := g.AnswerQuestion(q.ID, "colder", nil); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	logged := g.Snapshot().CurrentRound.AskedQuestions[0]
	if logged.ResponseText != "warmer" || !logged.Answered {
		t.Fatalf("answer not recorded: %+v", logged)
	}
}

func TestAdjustCoinsClampsAtZero(t *testing.T) {
	g := newTestGame()
	team := g.CreateTeam("Foxes")

	if _, err := g.AdjustCoins(uuid.New(), 10); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	balance, err := g.AdjustCoins(team.ID, 40)
	if err != nil || balance != 40 {
		t.Fatalf("credit: balance %d err %v", balance, err)
	}
	balance, err = g.AdjustCoins(team.ID, -100)
	if err != nil || balance != 0 {
		t.Fatalf("debit must clamp at zero: balance %d err %v", balance, err)
	}
}
