package stream

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Conn wraps one viewer's WebSocket connection with a buffered outbound
// queue. Slow viewers drop frames instead of stalling the broadcast.
type Conn struct {
	ws     *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
	once   sync.Once
	ID     string
}

func newConn(ws *websocket.Conn, id string) *Conn {
	return &Conn{
		ws:     ws,
		sendCh: make(chan []byte, 64),
		done:   make(chan struct{}),
		ID:     id,
	}
}

// send queues pre-encoded bytes for the write loop. Frames are disposable:
// when the buffer is full the viewer just misses this one.
func (c *Conn) send(data []byte) {
	select {
	case c.sendCh <- data:
	default:
		log.Printf("conn %s: send buffer full, dropping frame", c.ID)
	}
}

// readLoop drains incoming messages. Viewers have nothing to say; reading
// only services control frames and notices the peer going away.
func (c *Conn) readLoop(ctx context.Context) {
	for {
		if _, _, err := c.ws.Read(ctx); err != nil {
			c.Close()
			return
		}
	}
}

// WriteLoop ships queued frames until the connection dies.
func (c *Conn) WriteLoop(ctx context.Context) {
	for {
		select {
		case data := <-c.sendCh:
			ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := c.ws.Write(ctx2, websocket.MessageBinary, data)
			cancel()
			if err != nil {
				log.Printf("conn %s: write error: %v", c.ID, err)
				c.Close()
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close shuts the connection down exactly once.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close(websocket.StatusNormalClosure, "")
	})
}

// Done is closed when the connection has shut down.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}
