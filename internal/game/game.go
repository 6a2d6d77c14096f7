// internal/game/game.go
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/cache"
	"github.com/wclam/hideseek/internal/catalog"
	"github.com/wclam/hideseek/internal/config"
	"github.com/wclam/hideseek/internal/models"
)

// GameEventType is an enum-like type for broadcasting accepted mutations.
type GameEventType string

const (
	EventPlayerAdded      GameEventType = "player_added"
	EventTeamCreated      GameEventType = "team_created"
	EventPlayerAssigned   GameEventType = "player_assigned"
	EventPlayerRemoved    GameEventType = "player_removed"
	EventTeamRoleSet      GameEventType = "team_role_set"
	EventRoundStarted     GameEventType = "round_started"
	EventSeekingStarted   GameEventType = "seeking_phase_started"
	EventRoundEnded       GameEventType = "round_ended"
	EventQuestionAsked    GameEventType = "question_asked"
	EventQuestionAnswered GameEventType = "question_answered"
	EventCoinsAdjusted    GameEventType = "coins_adjusted"
	EventCursePurchased   GameEventType = "curse_purchased"
	EventCurseRolled      GameEventType = "curse_rolled"
	EventCurseActivated   GameEventType = "curse_activated"
	EventCursePhoto       GameEventType = "curse_photo_submitted"
	EventCurseCleared     GameEventType = "curse_cleared"
	EventPINUpdated       GameEventType = "pin_updated"
	EventRoleLoggedIn     GameEventType = "role_authenticated"
	EventRoleLoggedOut    GameEventType = "role_logged_out"
	EventMapURLUpdated    GameEventType = "map_url_updated"
)

// GameEvent holds data about an accepted mutation, broadcast to observers and
// journaled for the historian.
type GameEvent struct {
	Type    GameEventType          `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Game owns the entire mutable state for one hide-and-seek session. Every
// mutation is a synchronous read-validate-write transition over State under
// Mu, so two concurrent triggers can never observe a half-applied update.
type Game struct {
	ID  uuid.UUID
	Cfg config.Game

	Mu    sync.Mutex
	State *models.GameState

	// Curse sub-state between purchase and activation. Session-only by
	// design: a reload before activation forfeits the pending purchase.
	cursePurchasePending bool
	pendingCurse         *catalog.CurseRule

	// BroadcastFn is used to send events to all observers. If nil, no
	// broadcast is done.
	BroadcastFn func(ev GameEvent)

	// PersistFn receives a deep copy of the envelope after each accepted
	// mutation. Called from a goroutine; failures are the persistence
	// layer's to log, never to roll back.
	PersistFn func(snapshot *models.GameState)

	Logger *logrus.Logger

	eventIndex int

	// now and roll are injectable for tests.
	now  func() time.Time
	roll func() int
}

// New builds a game core around the given envelope, or a fresh default
// envelope when state is nil.
func New(cfg config.Game, state *models.GameState) *Game {
	if state == nil {
		state = models.NewGameState()
	}
	id, _ := uuid.NewRandom()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		ID:     id,
		Cfg:    cfg,
		State:  state,
		Logger: logrus.New(),
		now:    time.Now,
		roll:   func() int { return rng.Intn(6) + 1 },
	}
}

// Snapshot returns a deep copy of the envelope for read-only consumers.
func (g *Game) Snapshot() *models.GameState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.State.Clone()
}

// commit finalizes an accepted mutation: broadcast, journal, persist.
// Assumes lock is held.
func (g *Game) commit(actor uuid.UUID, ev GameEvent) {
	g.eventIndex++
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
	g.journal(actor, ev)

	if g.PersistFn != nil {
		snapshot := g.State.Clone()
		go g.PersistFn(snapshot)
	}
}

// journal pushes the event onto the Redis queue for the historian, if a
// client is connected. Fire-and-forget: a journaling failure never affects
// game state.
func (g *Game) journal(actor uuid.UUID, ev GameEvent) {
	if cache.Rdb == nil {
		return
	}
	record := cache.GameEventRecord{
		SessionID:   g.ID,
		EventIndex:  g.eventIndex,
		ActorTeamID: actor,
		EventType:   string(ev.Type),
		Payload:     ev.Payload,
		Timestamp:   g.now().UnixMilli(),
	}
	go func() {
		if err := cache.PublishGameEvent(record); err != nil {
			g.Logger.Warnf("failed to journal event %s: %v", ev.Type, err)
		}
	}()
}

// playerByID scans the roster. Assumes lock is held.
func (g *Game) playerByID(id uuid.UUID) *models.Player {
	for i := range g.State.Players {
		if g.State.Players[i].ID == id {
			return &g.State.Players[i]
		}
	}
	return nil
}

// teamByID scans the roster. Assumes lock is held.
func (g *Game) teamByID(id uuid.UUID) *models.Team {
	return g.State.TeamByID(id)
}

// hidingTeam returns the roster team currently designated hider, or nil.
// Assumes lock is held.
func (g *Game) hidingTeam() *models.Team {
	for _, t := range g.State.Teams {
		if t.IsHiding {
			return t
		}
	}
	return nil
}

// syncHiderSnapshot copies the hider's economic fields from the roster record
// onto the current round's snapshot. This is the single write-through point
// keeping the two copies from diverging. Assumes lock is held.
func (g *Game) syncHiderSnapshot() {
	r := g.State.CurrentRound
	if r == nil || r.HidingTeam == nil {
		return
	}
	team := g.teamByID(r.HidingTeam.ID)
	if team == nil {
		return
	}
	r.HidingTeam.Coins = team.Coins
	r.HidingTeam.CursesUsed = team.CursesUsed
	r.HidingTeam.HidingTimeSeconds = team.HidingTimeSeconds
}
