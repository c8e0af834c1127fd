package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// single-user local tool; any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

func ProgressHandler(hub *ProgressHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not available"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn("ws: upgrade failed", "error", err)
			return
		}
		client := newProgressClient(hub, conn)
		hub.register <- client

		go client.writePump()
		client.readPump()
	}
}
