package inboxsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// WSStream implements Stream over the server's WebSocket push channel.
type WSStream struct {
	baseURL string
	token   string
	dialer  *websocket.Dialer
}

// NewWSStream builds a stream for the WebSocket endpoint at baseURL
// (ws:// or wss:// scheme). dialer may be nil.
func NewWSStream(baseURL, token string, dialer *websocket.Dialer) *WSStream {
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	return &WSStream{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		dialer:  dialer,
	}
}

type pushEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Subscribe dials the push endpoint and returns a channel of decoded
// notifications. The channel closes when the connection drops for any
// reason; the caller resubscribes after a fresh snapshot.
func (s *WSStream) Subscribe(ctx context.Context, recipientID string) (<-chan Notification, error) {
	endpoint := s.baseURL + "/ws/notifications/" + url.PathEscape(recipientID)
	header := http.Header{}
	if s.token != "" {
		header.Set("Authorization", "Bearer "+s.token)
	}

	conn, resp, err := s.dialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: status %d: %w", endpoint, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	out := make(chan Notification, 16)

	// Close the connection on ctx cancellation so the read loop unblocks.
	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	go func() {
		defer close(out)
		defer close(stop)
		defer conn.Close()
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var env pushEnvelope
			if err := json.Unmarshal(payload, &env); err != nil {
				continue
			}
			if env.Event != "new_notification" {
				continue
			}
			var n Notification
			if err := json.Unmarshal(env.Data, &n); err != nil {
				continue
			}
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
