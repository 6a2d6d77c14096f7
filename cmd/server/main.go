// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/auth"
	"github.com/wclam/hideseek/internal/cache"
	"github.com/wclam/hideseek/internal/config"
	"github.com/wclam/hideseek/internal/database"
	"github.com/wclam/hideseek/internal/handlers"
	"github.com/wclam/hideseek/internal/middleware"
	"github.com/wclam/hideseek/internal/models"
)

func main() {
	auth.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	// Postgres and Redis are both optional at runtime; the game degrades to
	// memory-only play when either is unreachable.
	if err := database.ConnectDB(); err != nil {
		logger.Warnf("running without persistence: %v", err)
	}
	if err := cache.ConnectRedis(); err != nil {
		logger.Warnf("running without event journaling: %v", err)
	}

	cfg := config.FromEnv()

	var state *models.GameState
	sessionID := uuid.Nil
	if sid := os.Getenv("HS_SESSION_ID"); sid != "" {
		parsed, err := uuid.Parse(sid)
		if err != nil {
			log.Fatalf("invalid HS_SESSION_ID: %v", err)
		}
		sessionID = parsed
		state = database.LoadGameState(context.Background(), sessionID)
	}

	srv := handlers.NewGameServer(logger, cfg, state)
	if sessionID != uuid.Nil {
		srv.Game.ID = sessionID
	}

	logged := middleware.LogMiddleware(logger)
	mux := http.NewServeMux()

	// access endpoints
	mux.Handle("/auth/login", logged(handlers.LoginHandler(srv)))
	mux.Handle("/auth/logout", logged(handlers.LogoutHandler(srv)))
	mux.Handle("/auth/pin", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.SetPINHandler(srv))))

	// roster endpoints, admin-gated
	mux.Handle("/roster/players", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.AddPlayerHandler(srv))))
	mux.Handle("/roster/teams", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.CreateTeamHandler(srv))))
	mux.Handle("/roster/assign", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.AssignPlayerHandler(srv))))
	mux.Handle("/roster/remove", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.RemovePlayerHandler(srv))))
	mux.Handle("/roster/role", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.SetTeamRoleHandler(srv))))

	// round lifecycle, admin-gated
	mux.Handle("/round/start", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.StartRoundHandler(srv))))
	mux.Handle("/round/seeking", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.StartSeekingHandler(srv))))
	mux.Handle("/round/end", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.EndRoundHandler(srv))))

	// seeker endpoints
	mux.Handle("/questions", logged(handlers.RequireRole(srv, auth.RoleSeeker, handlers.ListQuestionsHandler(srv))))
	mux.Handle("/questions/ask", logged(handlers.RequireRole(srv, auth.RoleSeeker, handlers.AskQuestionHandler(srv))))
	mux.Handle("/curse/confirm", logged(handlers.RequireRole(srv, auth.RoleSeeker, handlers.ConfirmCurseHandler(srv))))
	mux.Handle("/curse/photo", logged(handlers.RequireRole(srv, auth.RoleSeeker, handlers.SubmitCursePhotoHandler(srv))))

	// hider endpoints
	mux.Handle("/questions/answer", logged(handlers.RequireRole(srv, auth.RoleHider, handlers.AnswerQuestionHandler(srv))))
	mux.Handle("/curse/purchase", logged(handlers.RequireRole(srv, auth.RoleHider, handlers.PurchaseCurseHandler(srv))))
	mux.Handle("/curse/roll", logged(handlers.RequireRole(srv, auth.RoleHider, handlers.RollCurseHandler(srv))))
	mux.Handle("/curse/activate", logged(handlers.RequireRole(srv, auth.RoleHider, handlers.ActivateCurseHandler(srv))))
	mux.Handle("/curse/acknowledge", logged(handlers.RequireRole(srv, auth.RoleHider, handlers.AcknowledgeCursePhotoHandler(srv))))

	// economy corrections, admin-gated
	mux.Handle("/coins/adjust", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.AdjustCoinsHandler(srv))))
	mux.Handle("/map", logged(handlers.RequireRole(srv, auth.RoleAdmin, handlers.SetMapURLHandler(srv))))

	// read surface
	mux.Handle("/state", logged(handlers.StateHandler(srv)))
	mux.Handle("/game/ws", logged(handlers.GameWSHandler(logger, srv)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
