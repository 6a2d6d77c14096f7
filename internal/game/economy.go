// internal/game/economy.go
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/catalog"
	"github.com/wclam/hideseek/internal/models"
)

// AskQuestion logs a seeker question against the current round and credits
// the catalog reward to the hider. The credit is applied to the roster record
// and the round snapshot in the same transition so the two never diverge.
// This is the only seeker-initiated action that moves coins.
func (g *Game) AskQuestion(optionID string, askingTeamID uuid.UUID) (models.AskedQuestion, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return models.AskedQuestion{}, fmt.Errorf("ask question: %w", ErrNoRound)
	}
	option, ok := catalog.QuestionByID(optionID)
	if !ok {
		return models.AskedQuestion{}, fmt.Errorf("ask question: unknown option %q", optionID)
	}
	if option.Available != nil && !option.Available(round) {
		return models.AskedQuestion{}, fmt.Errorf("ask question (%s): %w", optionID, ErrQuestionUnavailable)
	}
	asker := g.teamByID(askingTeamID)
	if asker == nil {
		return models.AskedQuestion{}, fmt.Errorf("ask question: %w", ErrTeamNotFound)
	}
	if !asker.IsSeeking {
		return models.AskedQuestion{}, fmt.Errorf("ask question: %w", ErrNotSeekingTeam)
	}

	id, _ := uuid.NewRandom()
	q := models.AskedQuestion{
		ID:               id,
		QuestionOptionID: option.ID,
		Category:         option.Category,
		Text:             option.Text,
		Timestamp:        g.now(),
		AskingTeamID:     askingTeamID,
	}
	round.AskedQuestions = append(round.AskedQuestions, q)

	if option.Reward > 0 {
		g.adjustHiderCoins(option.Reward)
	}

	g.commit(askingTeamID, GameEvent{
		Type: EventQuestionAsked,
		Payload: map[string]interface{}{
			"questionId": q.ID.String(),
			"option":     option.ID,
			"category":   string(option.Category),
			"reward":     option.Reward,
		},
	})
	return q, nil
}

// AnswerQuestion attaches the single allowed response to a logged question.
// Exactly one of text or photo is expected; photo bytes stay in memory only.
func (g *Game) AnswerQuestion(questionID uuid.UUID, text string, photo []byte) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("answer question: %w", ErrNoRound)
	}
	var q *models.AskedQuestion
	for i := range round.AskedQuestions {
		if round.AskedQuestions[i].ID == questionID {
			q = &round.AskedQuestions[i]
			break
		}
	}
	if q == nil {
		return fmt.Errorf("answer question: %w", ErrQuestionNotFound)
	}
	if q.Answered {
		return fmt.Errorf("answer question: %w", ErrAlreadyAnswered)
	}

	q.ResponseText = text
	q.ResponsePhoto = photo
	q.Answered = true

	g.commit(round.HidingTeam.ID, GameEvent{
		Type: EventQuestionAnswered,
		Payload: map[string]interface{}{
			"questionId": questionID.String(),
			"hasPhoto":   len(photo) > 0,
		},
	})
	return nil
}

// AdjustCoins applies a direct adjustment to a team's balance. Negative deltas
// clamp at zero; the balance never goes negative.
func (g *Game) AdjustCoins(teamID uuid.UUID, delta int) (int, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	team := g.teamByID(teamID)
	if team == nil {
		return 0, fmt.Errorf("adjust coins: %w", ErrTeamNotFound)
	}

	team.Coins += delta
	if team.Coins < 0 {
		team.Coins = 0
	}
	g.syncHiderSnapshot()

	g.commit(teamID, GameEvent{
		Type: EventCoinsAdjusted,
		Payload: map[string]interface{}{
			"teamId":  teamID.String(),
			"delta":   delta,
			"balance": team.Coins,
		},
	})
	return team.Coins, nil
}

// adjustHiderCoins moves the current round's hider balance by delta, clamped
// at zero, writing through roster record and round snapshot. Assumes lock is
// held and a round exists.
func (g *Game) adjustHiderCoins(delta int) {
	round := g.State.CurrentRound
	team := g.teamByID(round.HidingTeam.ID)
	if team == nil {
		// Snapshot without a roster record should not happen; keep the
		// snapshot authoritative for the round in that case.
		round.HidingTeam.Coins += delta
		if round.HidingTeam.Coins < 0 {
			round.HidingTeam.Coins = 0
		}
		return
	}
	team.Coins += delta
	if team.Coins < 0 {
		team.Coins = 0
	}
	g.syncHiderSnapshot()
}
