package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/particle-morph/parameter"
)

// WebSocket reads frames pushed by a detector bridge, each text or binary message is one JSON frame
// The process only dials out, it never listens
type WebSocket struct {
	url    string
	dialer *websocket.Dialer
}

func NewWebSocket(url string) *WebSocket {
	d := *websocket.DefaultDialer
	d.HandshakeTimeout = parameter.FeedDialTimeout
	return &WebSocket{url: url, dialer: &d}
}

func (ws *WebSocket) Name() string { return ws.url }

// Run dials, then reads until ctx is cancelled or the peer closes
func (ws *WebSocket) Run(ctx context.Context, sink Sink) error {
	dialCtx, cancel := context.WithTimeout(ctx, parameter.FeedDialTimeout)
	conn, _, err := ws.dialer.DialContext(dialCtx, ws.url, nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial %s: %w", ws.url, err)
	}

	// Unblock ReadMessage on cancellation
	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer func() {
		if stop() {
			_ = conn.Close()
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("%w: %s: %v", ErrSourceClosed, ws.url, err)
		}

		frame, _, err := decodeFrame(msg)
		if err != nil {
			sink.Malformed(err)
			continue
		}
		frame.At = time.Now()
		sink.Frame(frame)
	}
}
