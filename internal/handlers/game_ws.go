// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/game"
	"github.com/wclam/hideseek/internal/middleware"
)

// GameWSHandler upgrades the HTTP connection to a WebSocket event feed.
// Observers receive every accepted mutation as a GameEvent; the feed is
// read-only and all mutations go through the HTTP endpoints.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			logger.Warnf("Client connected with invalid subprotocol: %s", c.Subprotocol())
			c.Close(websocket.StatusPolicyViolation, "Client must use the 'game' subprotocol.")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		gs.addObserver(c)

		// Send the current snapshot so a late joiner starts in sync.
		snapshot := gs.Game.Snapshot()
		snapshot.AdminPINHash = ""
		snapshot.HiderPINHash = ""
		snapshot.SeekerPINHash = ""
		if data, err := json.Marshal(map[string]interface{}{
			"type":  "state_snapshot",
			"state": snapshot,
		}); err == nil {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			_ = c.Write(ctx, websocket.MessageText, data)
			cancel()
		}

		// Block reading until the client goes away. Incoming frames are
		// drained and ignored.
		readErr := drainObserver(r.Context(), c)

		gs.removeObserver(c)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)
		c.Close(websocket.StatusNormalClosure, "bye")
	}
}

// drainObserver reads and discards frames until the connection closes.
func drainObserver(ctx context.Context, c *websocket.Conn) error {
	for {
		if _, _, err := c.Read(ctx); err != nil {
			return err
		}
	}
}

func (gs *GameServer) addObserver(c *websocket.Conn) {
	gs.obsMu.Lock()
	defer gs.obsMu.Unlock()
	gs.observers[c] = struct{}{}
}

func (gs *GameServer) removeObserver(c *websocket.Conn) {
	gs.obsMu.Lock()
	defer gs.obsMu.Unlock()
	delete(gs.observers, c)
}

// createBroadcastFunc returns a function suitable for Game.BroadcastFn.
// It marshals the event and sends it asynchronously to all connected
// observers.
func createBroadcastFunc(gs *GameServer, logger *logrus.Logger) func(ev game.GameEvent) {
	return func(ev game.GameEvent) {
		// Called while the game lock is held; grab the observer list and get
		// off the hot path before any network writes.
		gs.obsMu.Lock()
		conns := make([]*websocket.Conn, 0, len(gs.observers))
		for c := range gs.observers {
			conns = append(conns, c)
		}
		gs.obsMu.Unlock()

		if len(conns) == 0 {
			return
		}
		data, err := json.Marshal(ev)
		if err != nil {
			logger.Errorf("Failed to marshal broadcast event (%s): %v", ev.Type, err)
			return
		}

		for _, c := range conns {
			go func(conn *websocket.Conn) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debugf("Dropping observer after write error: %v", err)
					gs.removeObserver(conn)
					conn.Close(websocket.StatusAbnormalClosure, "write failed")
				}
			}(c)
		}
	}
}
