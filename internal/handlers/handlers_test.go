// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wclam/hideseek/internal/auth"
	"github.com/wclam/hideseek/internal/config"
	"github.com/wclam/hideseek/internal/models"
)

func testServer(t *testing.T) *GameServer {
	t.Helper()
	auth.Init() // ephemeral keys, no DB needed
	logger := logrus.New()
	cfg := config.Game{
		CurseCost:         50,
		MaxCursesPerRound: 3,
		StartingCoins:     0,
		DefaultAdminPIN:   "1234",
	}
	return NewGameServer(logger, cfg, nil)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// TestAddPlayerAndTeam checks the basic roster endpoints.
func TestAddPlayerAndTeam(t *testing.T) {
	gs := testServer(t)

	w := postJSON(t, AddPlayerHandler(gs), "/roster/players", map[string]string{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p models.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.NotEqual(t, uuid.Nil, p.ID)
	require.Equal(t, "Ada", p.Name)

	w = postJSON(t, CreateTeamHandler(gs), "/roster/teams", map[string]string{"name": "Foxes"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var team models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	require.NotEqual(t, uuid.Nil, team.ID)

	w = postJSON(t, AssignPlayerHandler(gs), "/roster/assign", map[string]string{
		"playerId": p.ID.String(),
		"teamId":   team.ID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	snapshot := gs.Game.Snapshot()
	require.Len(t, snapshot.Teams, 1)
	require.True(t, snapshot.Teams[0].HasPlayer(p.ID))
}

// TestAssignUnknownTeamIs404 checks sentinel-to-status mapping.
func TestAssignUnknownTeamIs404(t *testing.T) {
	gs := testServer(t)
	p := gs.Game.AddPlayer("Ada")

	w := postJSON(t, AssignPlayerHandler(gs), "/roster/assign", map[string]string{
		"playerId": p.ID.String(),
		"teamId":   uuid.NewString(),
	})
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

// TestAdminLoginDefaultPIN exercises the built-in admin fallback and the
// role token cookie it issues.
func TestAdminLoginDefaultPIN(t *testing.T) {
	gs := testServer(t)

	w := postJSON(t, LoginHandler(gs), "/auth/login", map[string]string{
		"role": "admin", "pin": "9999",
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = postJSON(t, LoginHandler(gs), "/auth/login", map[string]string{
		"role": "admin", "pin": "1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, "role_token", cookies[0].Name)

	role, err := auth.AuthenticateRoleToken(cookies[0].Value)
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, role)
}

// TestRequireRoleGate checks open access without a PIN, denial once a PIN is
// set, and the admin token override.
func TestRequireRoleGate(t *testing.T) {
	gs := testServer(t)
	gated := RequireRole(gs, auth.RoleHider, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// No hider PIN configured: open access.
	req := httptest.NewRequest("GET", "/hider/view", nil)
	w := httptest.NewRecorder()
	gated.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	require.NoError(t, gs.Game.SetPIN(auth.RoleHider, "4321"))
	require.NoError(t, gs.Game.Logout(auth.RoleHider))

	req = httptest.NewRequest("GET", "/hider/view", nil)
	w = httptest.NewRecorder()
	gated.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := auth.CreateRoleToken(auth.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/hider/view", nil)
	req.Header.Set("Cookie", "role_token="+adminToken)
	w = httptest.NewRecorder()
	gated.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}

// TestStateRedactsHashes makes sure credential material never leaves over the
// read endpoint.
func TestStateRedactsHashes(t *testing.T) {
	gs := testServer(t)
	require.NoError(t, gs.Game.SetPIN(auth.RoleAdmin, "0000"))

	req := httptest.NewRequest("GET", "/state", nil)
	w := httptest.NewRecorder()
	StateHandler(gs).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot models.GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	require.Empty(t, snapshot.AdminPINHash)
}

// TestAskQuestionOverHTTP walks the seeker question flow end to end through
// the handlers.
func TestAskQuestionOverHTTP(t *testing.T) {
	gs := testServer(t)

	hiders := gs.Game.CreateTeam("Hiders")
	seekers := gs.Game.CreateTeam("Seekers")
	require.NoError(t, gs.Game.SetTeamRole(hiders.ID, "hider"))
	require.NoError(t, gs.Game.SetTeamRole(seekers.ID, "seeker"))

	w := postJSON(t, StartRoundHandler(gs), "/round/start", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = postJSON(t, AskQuestionHandler(gs), "/questions/ask", map[string]string{
		"optionId":     "radar-1km",
		"askingTeamId": seekers.ID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var q models.AskedQuestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	require.Equal(t, "radar-1km", q.QuestionOptionID)

	snapshot := gs.Game.Snapshot()
	require.Equal(t, 30, snapshot.TeamByID(hiders.ID).Coins)

	// The single allowed response.
	w = postJSON(t, AnswerQuestionHandler(gs), "/questions/answer", map[string]string{
		"questionId": q.ID.String(),
		"text":       "yes",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = postJSON(t, AnswerQuestionHandler(gs), "/questions/answer", map[string]string{
		"questionId": q.ID.String(),
		"text":       "no, wait",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}
