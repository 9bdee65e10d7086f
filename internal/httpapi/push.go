package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/service"
)

// Push defaults
const (
	DefaultPingInterval = 15 * time.Second
	DefaultWriteWait    = 10 * time.Second
)

// PushConfig tunes the WebSocket endpoint. Zero values select the defaults.
type PushConfig struct {
	PingInterval time.Duration
	WriteWait    time.Duration
}

// pusher streams a member's session events over a WebSocket. The member's
// previous connection, if any, is closed with 4001.
type pusher struct {
	coord    *service.Coordinator
	cfg      PushConfig
	upgrader websocket.Upgrader
}

func newPusher(coord *service.Coordinator, cfg PushConfig, allowOrigin string) *pusher {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultPingInterval
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = DefaultWriteWait
	}
	return &pusher{
		coord: coord,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowOrigin == "" || allowOrigin == "*" {
					return true
				}
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowOrigin
			},
		},
	}
}

func (p *pusher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	groupID, userID := r.PathValue("group_id"), r.PathValue("user_id")

	sub, err := p.coord.Subscribe(groupID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer sub.Close()

	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied.
		slog.Warn("WebSocket upgrade failed", "group_id", groupID, "user_id", userID, "error", err)
		return
	}
	defer conn.Close()
	slog.Debug("Member connected", "group_id", groupID, "user_id", userID)

	done := make(chan struct{})
	go p.read(conn, done)

	ticker := time.NewTicker(p.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				p.closeWith(conn, sub.Termination())
				slog.Debug("Member connection terminated",
					"group_id", groupID,
					"user_id", userID,
					"reason", sub.Termination().Reason,
				)
				return
			}
			conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteWait))
			if err := conn.WriteJSON(event); err != nil {
				slog.Debug("Push write failed", "group_id", groupID, "user_id", userID, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(p.cfg.WriteWait)); err != nil {
				return
			}
		case <-done:
			slog.Debug("Member disconnected", "group_id", groupID, "user_id", userID)
			return
		}
	}
}

// read drains client frames so control frames are processed, and closes done
// when the client goes away. Clients have nothing to send.
func (p *pusher) read(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	pongWait := 2 * p.cfg.PingInterval
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (p *pusher) closeWith(conn *websocket.Conn, t models.Termination) {
	if t == (models.Termination{}) {
		t = models.TerminationShutdown
	}
	msg := websocket.FormatCloseMessage(t.Code, t.Reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(p.cfg.WriteWait)); err != nil {
		slog.Debug("Failed to send close frame", "error", err)
	}
}
