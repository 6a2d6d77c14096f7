// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wclam/hideseek/internal/game"
)

// extractCookieToken extracts a named cookie value from "Cookie" header, or returns empty if not found.
func extractCookieToken(cookieHeader, cookieName string) string {
	parts := strings.Split(cookieHeader, cookieName+"=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

// writeJSON marshals v with a status code. Encoding failures are not
// recoverable mid-response; they are swallowed after the header is out.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeGameError maps core sentinel errors onto HTTP statuses: unknown ids are
// 404, authentication failures 403, rejected preconditions 409.
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusConflict
	switch {
	case errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrTeamNotFound),
		errors.Is(err, game.ErrQuestionNotFound),
		errors.Is(err, game.ErrNoRound),
		errors.Is(err, game.ErrNoActiveCurse):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInvalidPIN),
		errors.Is(err, game.ErrNoPINConfigured):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrUnknownRole):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
