package realtime

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"memberhub.io/memberhub/internal/pkg/logger"
)

// ConnOptions tunes the per-connection pumps.
type ConnOptions struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
}

func (o *ConnOptions) norm() {
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PingInterval <= 0 {
		o.PingInterval = 30 * time.Second
	}
}

// ServeConn runs the read and write pumps for one upgraded connection
// until the peer disconnects or the session is dropped. It blocks, and
// always unsubscribes the session and closes the socket before returning.
func ServeConn(hub *Hub, session *Session, conn *websocket.Conn, opts ConnOptions) {
	opts.norm()

	defer func() {
		hub.Unsubscribe(session)
		_ = conn.Close()
	}()

	// Pong receipt extends the read deadline; a silent peer times out
	// after two missed pings.
	readDeadline := 2 * opts.PingInterval
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	done := make(chan struct{})

	// Read pump: clients send no application frames; reading only
	// services control frames and surfaces disconnects.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-session.Outbox():
			if !ok {
				// Session dropped by the hub.
				_ = conn.SetWriteDeadline(time.Now().Add(opts.WriteTimeout))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session dropped"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(opts.WriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Debug("realtime write failed",
					zap.String("recipient", session.RecipientID()),
					zap.Error(err),
				)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(opts.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
