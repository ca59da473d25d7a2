package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/adapters/out/notifier"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// WebSocketHandler bridges hub sessions onto websocket connections. Each
// connection gets its own session; events the hub publishes while the
// connection is open are written out as JSON frames.
type WebSocketHandler struct {
	hub      *notifier.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler creates a handler serving the /ws endpoint.
func NewWebSocketHandler(hub *notifier.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Staff dashboards are served from arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With("component", "websocket_handler"),
	}
}

// Handle upgrades the request and pumps hub events to the client until the
// connection drops or the session is closed.
func (h *WebSocketHandler) Handle(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.WarnContext(ctx.Request().Context(), "websocket upgrade failed",
			"error", err)
		return err
	}

	session := h.hub.Subscribe()

	h.logger.InfoContext(ctx.Request().Context(), "websocket client connected",
		"session_id", session.ID())

	defer func() {
		h.hub.Unsubscribe(session.ID())
		_ = conn.Close()
		h.logger.InfoContext(ctx.Request().Context(), "websocket client disconnected",
			"session_id", session.ID())
	}()

	// Reader goroutine: we never expect client frames, but reading is the
	// only way to notice the peer closing the connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-session.Events():
			if !ok {
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if writeErr := conn.WriteJSON(event); writeErr != nil {
				h.logger.WarnContext(ctx.Request().Context(), "websocket write failed",
					"session_id", session.ID(),
					"error", writeErr)
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if pingErr := conn.WriteMessage(websocket.PingMessage, nil); pingErr != nil {
				return nil
			}
		case <-done:
			return nil
		}
	}
}
