package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DoyleJ11/color-grid-backend/internal/editstore"
	"github.com/DoyleJ11/color-grid-backend/internal/hub"
	"github.com/DoyleJ11/color-grid-backend/pkg/types"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler upgrades the connection, registers it with the hub, streams
// CellEdited notices out, and accepts ApplyEdit messages in.
func Handler(h *hub.Hub, store *editstore.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan hub.EditNotice, 8)
		clientID := uuid.NewString()

		h.Inbox() <- hub.Join{ClientID: clientID, Outbox: out}
		defer func() { h.Inbox() <- hub.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for n := range out {
				color := n.Color
				msg := types.ServerMessage{
					Type:    "CellEdited",
					Version: n.Version,
					X:       n.X,
					Y:       n.Y,
					TeamID:  n.TeamID,
					Color:   &color,
				}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (hub.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}
			if cm.Type != "ApplyEdit" {
				writeError(r.Context(), conn, "unknown type")
				continue
			}

			color, err := store.Apply(cm.X, cm.Y, cm.TeamID)
			if err != nil {
				if errors.Is(err, editstore.ErrOutOfBounds) || errors.Is(err, editstore.ErrUnknownTeam) {
					writeError(r.Context(), conn, err.Error())
					continue
				}
				writeError(r.Context(), conn, "edit failed")
				continue
			}
			log.Debug("edit applied over ws",
				zap.String("client", clientID), zap.Int("x", cm.X), zap.Int("y", cm.Y), zap.Int("team", cm.TeamID))

			h.Inbox() <- hub.Publish{Notice: hub.EditNotice{X: cm.X, Y: cm.Y, TeamID: cm.TeamID, Color: color}}
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, reason string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: reason})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
