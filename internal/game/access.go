// internal/game/access.go
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wclam/hideseek/internal/auth"
)

// pinSlot returns pointers to a role's hash slot and session flag within the
// envelope. Assumes lock is held.
func (g *Game) pinSlot(role auth.Role) (hash *string, authed *bool, err error) {
	switch role {
	case auth.RoleAdmin:
		return &g.State.AdminPINHash, &g.State.AdminAuthed, nil
	case auth.RoleHider:
		return &g.State.HiderPINHash, &g.State.HiderAuthed, nil
	case auth.RoleSeeker:
		return &g.State.SeekerPINHash, &g.State.SeekerAuthed, nil
	}
	return nil, nil, fmt.Errorf("access: %w (%s)", ErrUnknownRole, role)
}

// Authenticate checks a candidate PIN for a role and, on success, marks the
// role authenticated for this session. The admin role falls back to the
// built-in default PIN while no admin PIN has ever been configured; the hider
// and seeker roles never authenticate against an empty slot — with no PIN set
// they are open-access and need no authentication at all.
func (g *Game) Authenticate(role auth.Role, candidate string) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	hash, authed, err := g.pinSlot(role)
	if err != nil {
		return err
	}

	if *hash == "" {
		if role == auth.RoleAdmin && candidate == g.Cfg.DefaultAdminPIN {
			*authed = true
			g.commit(uuid.Nil, GameEvent{
				Type:    EventRoleLoggedIn,
				Payload: map[string]interface{}{"role": string(role)},
			})
			return nil
		}
		if role == auth.RoleAdmin {
			return fmt.Errorf("authenticate %s: %w", role, ErrInvalidPIN)
		}
		return fmt.Errorf("authenticate %s: %w", role, ErrNoPINConfigured)
	}

	ok, err := auth.VerifyPIN(candidate, *hash)
	if err != nil {
		// A corrupt stored hash behaves like a wrong PIN; the envelope is
		// never mutated on a failed attempt.
		g.Logger.Warnf("stored PIN hash for role %s is unreadable: %v", role, err)
		return fmt.Errorf("authenticate %s: %w", role, ErrInvalidPIN)
	}
	if !ok {
		return fmt.Errorf("authenticate %s: %w", role, ErrInvalidPIN)
	}

	*authed = true
	g.commit(uuid.Nil, GameEvent{
		Type:    EventRoleLoggedIn,
		Payload: map[string]interface{}{"role": string(role)},
	})
	return nil
}

// SetPIN replaces a role's PIN. An empty value clears the slot, meaning "no
// PIN required"; clearing also forces the role's authenticated flag false so
// access is re-evaluated against the open-access rule instead of a stale
// session.
func (g *Game) SetPIN(role auth.Role, value string) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	hash, authed, err := g.pinSlot(role)
	if err != nil {
		return err
	}

	if value == "" {
		*hash = ""
		*authed = false
	} else {
		h, err := auth.HashPIN(value)
		if err != nil {
			return fmt.Errorf("set pin for %s: %w", role, err)
		}
		*hash = h
	}

	g.commit(uuid.Nil, GameEvent{
		Type: EventPINUpdated,
		Payload: map[string]interface{}{
			"role":    string(role),
			"cleared": value == "",
		},
	})
	return nil
}

// Logout unconditionally clears a role's authenticated flag.
func (g *Game) Logout(role auth.Role) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	_, authed, err := g.pinSlot(role)
	if err != nil {
		return err
	}
	*authed = false

	g.commit(uuid.Nil, GameEvent{
		Type:    EventRoleLoggedOut,
		Payload: map[string]interface{}{"role": string(role)},
	})
	return nil
}

// HasAccess reports whether a role's view may be shown: the slot is empty
// (open access) or the session has authenticated.
func (g *Game) HasAccess(role auth.Role) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	hash, authed, err := g.pinSlot(role)
	if err != nil {
		return false
	}
	return *hash == "" || *authed
}

// SetMapURL stores the shared map link in the envelope.
func (g *Game) SetMapURL(url string) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	g.State.MapURL = url
	g.commit(uuid.Nil, GameEvent{
		Type:    EventMapURLUpdated,
		Payload: map[string]interface{}{"url": url},
	})
}
