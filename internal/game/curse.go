// internal/game/curse.go
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/catalog"
	"github.com/wclam/hideseek/internal/models"
)

// PurchaseCurse pays the flat curse-dice cost up front. Purchase and roll are
// decoupled: payment happens here, before the outcome is known. Preconditions:
// the acting team is the round's hider, nothing is already pending or active,
// the per-round cap has not been reached, and the balance covers the cost.
func (g *Game) PurchaseCurse(teamID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("purchase curse: %w", ErrNoRound)
	}
	if round.HidingTeam.ID != teamID {
		return fmt.Errorf("purchase curse: %w", ErrNotHidingTeam)
	}
	if g.cursePurchasePending || g.pendingCurse != nil {
		return fmt.Errorf("purchase curse: %w", ErrPurchasePending)
	}
	if round.ActiveCurse != nil {
		return fmt.Errorf("purchase curse: %w", ErrCurseActive)
	}
	team := g.teamByID(teamID)
	if team == nil {
		return fmt.Errorf("purchase curse: %w", ErrTeamNotFound)
	}
	if team.CursesUsed >= g.Cfg.MaxCursesPerRound {
		return fmt.Errorf("purchase curse: %w (%d of %d)", ErrCurseLimitReached, team.CursesUsed, g.Cfg.MaxCursesPerRound)
	}
	if team.Coins < g.Cfg.CurseCost {
		return fmt.Errorf("purchase curse: %w (have %d, need %d)", ErrInsufficientCoins, team.Coins, g.Cfg.CurseCost)
	}

	g.adjustHiderCoins(-g.Cfg.CurseCost)
	g.cursePurchasePending = true

	g.commit(teamID, GameEvent{
		Type: EventCursePurchased,
		Payload: map[string]interface{}{
			"teamId":  teamID.String(),
			"cost":    g.Cfg.CurseCost,
			"balance": team.Coins,
		},
	})
	return nil
}

// RollCurse draws a uniformly random die face in [1,6] against a pending
// purchase and presents the matching curse rule for activation. The roll does
// not yet affect the seekers.
func (g *Game) RollCurse(teamID uuid.UUID) (catalog.CurseRule, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return catalog.CurseRule{}, fmt.Errorf("roll curse: %w", ErrNoRound)
	}
	if round.HidingTeam.ID != teamID {
		return catalog.CurseRule{}, fmt.Errorf("roll curse: %w", ErrNotHidingTeam)
	}
	if !g.cursePurchasePending {
		return catalog.CurseRule{}, fmt.Errorf("roll curse: %w", ErrNoPurchasePending)
	}
	if round.ActiveCurse != nil {
		return catalog.CurseRule{}, fmt.Errorf("roll curse: %w", ErrCurseActive)
	}

	n := g.roll()
	rule, ok := catalog.CurseByNumber(n)
	if !ok {
		// The injected roller misbehaved; treat as an internal no-op.
		return catalog.CurseRule{}, fmt.Errorf("roll curse: die produced %d", n)
	}
	g.cursePurchasePending = false
	g.pendingCurse = &rule

	g.commit(teamID, GameEvent{
		Type: EventCurseRolled,
		Payload: map[string]interface{}{
			"teamId":  teamID.String(),
			"curseId": rule.Number,
			"name":    rule.Name,
		},
	})
	return rule, nil
}

// ActivateCurse puts the rolled curse into effect. The activation and the
// hider's used-count increment are one atomic transition; the cap can never be
// dodged by dropping a follow-up call. Activation fails closed against the
// authoritative round state: if a curse is already active, no matter who
// activated it, this is rejected with the envelope untouched.
func (g *Game) ActivateCurse(teamID uuid.UUID, hiderText string) (*models.ActiveCurseInfo, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return nil, fmt.Errorf("activate curse: %w", ErrNoRound)
	}
	if round.HidingTeam.ID != teamID {
		return nil, fmt.Errorf("activate curse: %w", ErrNotHidingTeam)
	}
	rule := g.pendingCurse
	if rule == nil {
		return nil, fmt.Errorf("activate curse: %w", ErrNoRollPending)
	}
	if round.ActiveCurse != nil {
		return nil, fmt.Errorf("activate curse: %w", ErrCurseActive)
	}
	if rule.RequiresHiderText && hiderText == "" {
		return nil, fmt.Errorf("activate curse (%s): %w", rule.Name, ErrHiderTextRequired)
	}

	info := &models.ActiveCurseInfo{
		CurseID:          rule.Number,
		StartTime:        g.now(),
		ResolutionStatus: models.CursePendingSeekerAction,
		HiderInputText:   hiderText,
	}
	round.ActiveCurse = info
	g.pendingCurse = nil

	if team := g.teamByID(teamID); team != nil {
		team.CursesUsed++
	}
	g.syncHiderSnapshot()

	g.commit(teamID, GameEvent{
		Type: EventCurseActivated,
		Payload: map[string]interface{}{
			"teamId":  teamID.String(),
			"curseId": rule.Number,
			"name":    rule.Name,
		},
	})
	return info.Clone(), nil
}

// ConfirmCurse resolves a confirmation-class curse (including rules with no
// dedicated proof): the seekers acknowledge performing the task and the curse
// clears immediately.
func (g *Game) ConfirmCurse(seekerTeamID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("confirm curse: %w", ErrNoRound)
	}
	active := round.ActiveCurse
	if active == nil {
		return fmt.Errorf("confirm curse: %w", ErrNoActiveCurse)
	}
	rule, _ := catalog.CurseByNumber(active.CurseID)
	if rule.ResponseKind == catalog.ResponsePhoto {
		return fmt.Errorf("confirm curse (%s): %w", rule.Name, ErrPhotoRequired)
	}
	if active.ResolutionStatus != models.CursePendingSeekerAction {
		return fmt.Errorf("confirm curse: %w", ErrAwaitingHiderAck)
	}

	g.clearCurse(seekerTeamID)
	return nil
}

// SubmitCursePhoto attaches seeker photo proof to a photo-class curse and
// moves it to the hider-acknowledgement stage. The curse does not clear yet.
func (g *Game) SubmitCursePhoto(seekerTeamID uuid.UUID, photo []byte) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("submit curse photo: %w", ErrNoRound)
	}
	active := round.ActiveCurse
	if active == nil {
		return fmt.Errorf("submit curse photo: %w", ErrNoActiveCurse)
	}
	rule, _ := catalog.CurseByNumber(active.CurseID)
	if rule.ResponseKind != catalog.ResponsePhoto {
		return fmt.Errorf("submit curse photo (%s): %w", rule.Name, ErrPhotoNotApplicable)
	}
	if active.ResolutionStatus != models.CursePendingSeekerAction {
		return fmt.Errorf("submit curse photo: %w", ErrAwaitingHiderAck)
	}
	if len(photo) == 0 {
		return fmt.Errorf("submit curse photo: empty photo")
	}

	active.SeekerPhoto = photo
	active.ResolutionStatus = models.CursePendingHiderAck

	g.commit(seekerTeamID, GameEvent{
		Type: EventCursePhoto,
		Payload: map[string]interface{}{
			"curseId": active.CurseID,
		},
	})
	return nil
}

// AcknowledgeCursePhoto is the hider's final sign-off on a submitted photo,
// clearing the curse.
func (g *Game) AcknowledgeCursePhoto() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	round := g.State.CurrentRound
	if round == nil {
		return fmt.Errorf("acknowledge curse photo: %w", ErrNoRound)
	}
	active := round.ActiveCurse
	if active == nil {
		return fmt.Errorf("acknowledge curse photo: %w", ErrNoActiveCurse)
	}
	if active.ResolutionStatus != models.CursePendingHiderAck {
		return fmt.Errorf("acknowledge curse photo: %w", ErrNoHiderAckPending)
	}

	g.clearCurse(round.HidingTeam.ID)
	return nil
}

// clearCurse nils the active curse and tells observers which curse ended.
// Assumes lock is held and an active curse exists.
func (g *Game) clearCurse(actor uuid.UUID) {
	round := g.State.CurrentRound
	curseID := round.ActiveCurse.CurseID
	round.ActiveCurse = nil

	g.commit(actor, GameEvent{
		Type: EventCurseCleared,
		Payload: map[string]interface{}{
			"curseId": curseID,
		},
	})
}
