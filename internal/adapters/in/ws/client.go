package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 32
)

// client wraps one websocket connection. All writes go through the send
// channel and a single write pump goroutine, since gorilla connections
// support at most one concurrent writer.
type client struct {
	conn   *websocket.Conn
	send   chan Frame
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		conn:   conn,
		send:   make(chan Frame, sendBufferSize),
		logger: logger,
	}
}

// enqueue hands a frame to the write pump. A client whose buffer is full
// is skipped; delivery is best-effort and there is no replay. A frame
// arriving after the client disconnected is dropped silently, since a
// broadcast may race the disconnect.
func (c *client) enqueue(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- frame:
	default:
		c.logger.Warn("Dropping frame for slow client", "event", frame.Event)
	}
}

// close stops the write pump. Safe to call once per client.
func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump drains the send channel onto the connection. It exits when the
// send channel is closed and closes the underlying connection on the way out.
func (c *client) writePump() {
	defer func() { _ = c.conn.Close() }()

	for frame := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
