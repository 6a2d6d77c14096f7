// internal/handlers/access.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wclam/hideseek/internal/auth"
)

type loginRequest struct {
	Role string `json:"role"`
	PIN  string `json:"pin"`
}

// LoginHandler checks a role PIN and, on success, sets a signed role token
// cookie for subsequent requests.
func LoginHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid login payload", http.StatusBadRequest)
			return
		}
		role := auth.Role(req.Role)
		if !role.Valid() {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}
		if err := gs.Game.Authenticate(role, req.PIN); err != nil {
			writeGameError(w, err)
			return
		}

		token, err := auth.CreateRoleToken(role)
		if err != nil {
			gs.Logger.Errorf("failed to create role token: %v", err)
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "role_token",
			Value:    token,
			HttpOnly: true,
			Path:     "/",
		})
		writeJSON(w, http.StatusOK, map[string]string{"role": string(role)})
	}
}

type logoutRequest struct {
	Role string `json:"role"`
}

// LogoutHandler clears a role's session flag and expires the cookie.
func LogoutHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req logoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid logout payload", http.StatusBadRequest)
			return
		}
		role := auth.Role(req.Role)
		if !role.Valid() {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}
		if err := gs.Game.Logout(role); err != nil {
			writeGameError(w, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "role_token",
			Value:    "",
			HttpOnly: true,
			Path:     "/",
			MaxAge:   -1,
		})
		writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
	}
}

type setPINRequest struct {
	Role string `json:"role"`
	PIN  string `json:"pin"`
}

// SetPINHandler replaces a role's PIN; an empty PIN clears the gate.
func SetPINHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req setPINRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid pin payload", http.StatusBadRequest)
			return
		}
		role := auth.Role(req.Role)
		if !role.Valid() {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}
		if err := gs.Game.SetPIN(role, req.PIN); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type setMapURLRequest struct {
	URL string `json:"url"`
}

// SetMapURLHandler stores the shared transit-map link.
func SetMapURLHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req setMapURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid map payload", http.StatusBadRequest)
			return
		}
		gs.Game.SetMapURL(req.URL)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// StateHandler returns the full envelope snapshot with credential material
// redacted. Read-only; photo attachments are excluded by their field tags.
func StateHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snapshot := gs.Game.Snapshot()
		snapshot.AdminPINHash = ""
		snapshot.HiderPINHash = ""
		snapshot.SeekerPINHash = ""
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// RequireRole gates a handler behind a role's access rule: open access while
// the role has no PIN, otherwise a live authenticated session plus a valid
// role token cookie for that role (the admin token opens every gate).
func RequireRole(gs *GameServer, role auth.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gs.Game.HasAccess(role) {
			next(w, r)
			return
		}
		token := extractCookieToken(r.Header.Get("Cookie"), "role_token")
		tokenRole, err := auth.AuthenticateRoleToken(token)
		if err != nil || (tokenRole != role && tokenRole != auth.RoleAdmin) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
