package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"memberhub.io/memberhub/internal/pkg/logger"
	"memberhub.io/memberhub/internal/realtime"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Cross-origin access is governed by the CORS layer; the console and
	// API are same-origin in production.
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamNotifications handles GET /ws/notifications/:recipientId. The
// connection only carries live pushes; the client fetches its inbox
// snapshot over REST after every (re)connect.
func (s *Server) StreamNotifications(c *gin.Context) {
	recipientID := c.Param("recipientId")
	if !authorizeRecipient(c, recipientID) {
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logger.Warn("websocket upgrade failed",
			zap.String("recipient", recipientID),
			zap.Error(err),
		)
		return
	}

	session := s.hub.Subscribe(recipientID)
	logger.Debug("realtime session opened",
		zap.String("recipient", recipientID),
	)

	realtime.ServeConn(s.hub, session, conn, realtime.ConnOptions{
		WriteTimeout: s.realtimeCfg.WriteTimeout,
		PingInterval: s.realtimeCfg.PingInterval,
	})

	logger.Debug("realtime session closed",
		zap.String("recipient", recipientID),
	)
}
