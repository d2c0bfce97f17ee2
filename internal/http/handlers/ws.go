package handlers

import (
	"net/http"

	"blogapi/internal/http/middleware"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the frontend origins; CORS policy is
	// enforced at the HTTP layer, so the upgrade itself accepts any origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Echo handles GET /ws, echoing text and binary frames back verbatim until
// the peer closes. Pings are answered by the library's default pong handler.
func Echo(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		utils.LogEvent(middleware.GetRequestID(c), "ws", "upgrade_failed", err.Error())
		return
	}
	defer conn.Close()

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		switch msgType {
		case websocket.TextMessage, websocket.BinaryMessage:
			if err := conn.WriteMessage(msgType, payload); err != nil {
				return
			}
		}
	}
}

// EchoHealth handles GET /api/ws/health.
func EchoHealth(c *gin.Context) {
	Respond(c, http.StatusOK, "websocket service is running", gin.H{"endpoint": "/ws"})
}
