// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"dc-directory-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Maximum wait for any frame (ping or message) from a client.
const pongWait = 60 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler serves the public change feed. Clients only listen; any
// frame they send just keeps the connection alive.
type WebSocketHandler struct {
	Hub *socket.Hub
	Log zerolog.Logger
}

func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	clientID := uuid.NewString()
	h.Hub.Register(clientID, conn)
	defer func() {
		h.Hub.Unregister(clientID)
		conn.Close()
	}()

	extend := func() { _ = conn.SetReadDeadline(time.Now().Add(pongWait)) }
	extend()
	conn.SetPingHandler(func(appData string) error {
		extend()
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(time.Second))
	})
	conn.SetPongHandler(func(string) error {
		extend()
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Log.Debug().Err(err).Str("client", clientID).Msg("websocket closed unexpectedly")
			}
			return
		}
		extend()
	}
}
