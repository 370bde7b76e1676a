package handler

import (
	"net/http"

	"critgo/backend/internal/hub"
	"critgo/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Mirrors the permissive CORS policy of the HTTP API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers the session in the
// hub. The session joins the admin notification group when the token the
// caller authenticated with carries the admin role; the group membership
// ends when the connection does.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &hub.WebSocketClient{
		ConnID: uuid.New().String(),
		UserID: caller.ID,
		Admin:  caller.IsAdmin(),
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.RealtimeMessage, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
