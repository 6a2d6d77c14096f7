// internal/game/roster.go
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/models"
)

// TeamRole designates which side of the chase a team plays.
type TeamRole string

const (
	RoleHider  TeamRole = "hider"
	RoleSeeker TeamRole = "seeker"
	RoleNone   TeamRole = "none"
)

// AddPlayer creates a new roster player. Always succeeds; ids are unique and
// stable for the session.
func (g *Game) AddPlayer(name string) models.Player {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	id, _ := uuid.NewRandom()
	p := models.Player{ID: id, Name: name}
	g.State.Players = append(g.State.Players, p)

	g.commit(uuid.Nil, GameEvent{
		Type:    EventPlayerAdded,
		Payload: map[string]interface{}{"playerId": p.ID.String(), "name": p.Name},
	})
	return p
}

// CreateTeam creates a new team with no players, no role, and no coins.
func (g *Game) CreateTeam(name string) *models.Team {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	id, _ := uuid.NewRandom()
	t := &models.Team{ID: id, Name: name, Players: []models.Player{}}
	g.State.Teams = append(g.State.Teams, t)

	g.commit(uuid.Nil, GameEvent{
		Type:    EventTeamCreated,
		Payload: map[string]interface{}{"teamId": t.ID.String(), "name": t.Name},
	})
	return t.Clone()
}

// AssignPlayerToTeam moves a player onto the target team, removing them from
// any team they currently belong to. A player is a member of at most one team
// at any time. Idempotent when the player is already on the target team.
func (g *Game) AssignPlayerToTeam(playerID, teamID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	p := g.playerByID(playerID)
	if p == nil {
		return fmt.Errorf("assign player: %w", ErrPlayerNotFound)
	}
	target := g.teamByID(teamID)
	if target == nil {
		return fmt.Errorf("assign player: %w", ErrTeamNotFound)
	}
	if target.HasPlayer(playerID) {
		return nil
	}

	for _, t := range g.State.Teams {
		g.removeFromTeam(t, playerID)
	}
	target.Players = append(target.Players, *p)

	g.commit(teamID, GameEvent{
		Type: EventPlayerAssigned,
		Payload: map[string]interface{}{
			"playerId": playerID.String(),
			"teamId":   teamID.String(),
		},
	})
	return nil
}

// RemovePlayerFromTeam drops the player from the team. No-op if the player is
// not a member; the roster entry itself is never deleted.
func (g *Game) RemovePlayerFromTeam(playerID, teamID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	team := g.teamByID(teamID)
	if team == nil {
		return fmt.Errorf("remove player: %w", ErrTeamNotFound)
	}
	if !g.removeFromTeam(team, playerID) {
		return nil
	}

	g.commit(teamID, GameEvent{
		Type: EventPlayerRemoved,
		Payload: map[string]interface{}{
			"playerId": playerID.String(),
			"teamId":   teamID.String(),
		},
	})
	return nil
}

// removeFromTeam deletes playerID from the team's player list, reporting
// whether anything changed. Assumes lock is held.
func (g *Game) removeFromTeam(team *models.Team, playerID uuid.UUID) bool {
	for i, p := range team.Players {
		if p.ID == playerID {
			team.Players = append(team.Players[:i], team.Players[i+1:]...)
			return true
		}
	}
	return false
}

// SetTeamRole designates a team as hider, seeker, or neither. Marking a team
// as hider while another team already holds that role is rejected, never
// silently overwritten. Taking the hider role resets the team's round-start
// economy: cursesUsed back to zero, coins kept when non-zero, otherwise the
// configured starting balance.
func (g *Game) SetTeamRole(teamID uuid.UUID, role TeamRole) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	team := g.teamByID(teamID)
	if team == nil {
		return fmt.Errorf("set team role: %w", ErrTeamNotFound)
	}

	switch role {
	case RoleHider:
		if current := g.hidingTeam(); current != nil && current.ID != teamID {
			return fmt.Errorf("set team role: %w (%s)", ErrHiderTaken, current.Name)
		}
		team.IsHiding = true
		team.IsSeeking = false
		team.CursesUsed = 0
		if team.Coins == 0 {
			team.Coins = g.Cfg.StartingCoins
		}
	case RoleSeeker:
		team.IsHiding = false
		team.IsSeeking = true
	case RoleNone:
		team.IsHiding = false
		team.IsSeeking = false
	default:
		return fmt.Errorf("set team role: unknown role %q", role)
	}

	g.commit(teamID, GameEvent{
		Type: EventTeamRoleSet,
		Payload: map[string]interface{}{
			"teamId": teamID.String(),
			"role":   string(role),
		},
	})
	return nil
}
