// internal/handlers/game_server.go
package handlers

import (
	"context"
	"sync"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/config"
	"github.com/wclam/hideseek/internal/database"
	"github.com/wclam/hideseek/internal/game"
	"github.com/wclam/hideseek/internal/models"
)

// GameServer holds the single live game core plus the plumbing the HTTP and
// WebSocket layers share. One process hosts one session.
type GameServer struct {
	Game   *game.Game
	Logger *logrus.Logger

	obsMu     sync.Mutex
	observers map[*websocket.Conn]struct{}
}

// NewGameServer builds the core around a previously persisted envelope (nil
// for a fresh session) and wires persistence and observer broadcast.
func NewGameServer(logger *logrus.Logger, cfg config.Game, state *models.GameState) *GameServer {
	g := game.New(cfg, state)
	g.Logger = logger

	gs := &GameServer{
		Game:      g,
		Logger:    logger,
		observers: make(map[*websocket.Conn]struct{}),
	}

	g.BroadcastFn = createBroadcastFunc(gs, logger)
	g.PersistFn = func(snapshot *models.GameState) {
		if err := database.SaveGameState(context.Background(), g.ID, snapshot); err != nil {
			logger.Warnf("failed to persist game state: %v", err)
		}
	}
	return gs
}
