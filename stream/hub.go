package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"
)

// HubStats holds live hub metrics for the stats endpoint.
type HubStats struct {
	Viewers          int    `json:"viewers"`
	TotalConnections uint64 `json:"totalConnections"`
	FramesSent       uint64 `json:"framesSent"`
}

// Hub accepts viewer WebSockets and broadcasts every frame it is handed to
// all of them. It never reads game state itself; the driver pushes frames in.
type Hub struct {
	mu    sync.Mutex
	conns map[*Conn]struct{}

	nextID           atomic.Uint64
	totalConnections atomic.Uint64
	framesSent       atomic.Uint64

	originPatterns []string
}

// NewHub creates an empty hub. originPatterns restricts WebSocket origins
// when non-empty, same-origin only otherwise.
func NewHub(originPatterns []string) *Hub {
	return &Hub{
		conns:          make(map[*Conn]struct{}),
		originPatterns: originPatterns,
	}
}

// Stats returns a snapshot of current hub metrics.
func (h *Hub) Stats() HubStats {
	h.mu.Lock()
	viewers := len(h.conns)
	h.mu.Unlock()
	return HubStats{
		Viewers:          viewers,
		TotalConnections: h.totalConnections.Load(),
		FramesSent:       h.framesSent.Load(),
	}
}

// ViewerCount returns how many viewers are currently connected.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast encodes the frame once and queues it on every connection.
func (h *Hub) Broadcast(frame Frame) {
	data, err := Encode(frame)
	if err != nil {
		log.Printf("stream: encode error: %v", err)
		return
	}

	h.mu.Lock()
	for c := range h.conns {
		c.send(data)
	}
	n := len(h.conns)
	h.mu.Unlock()

	if n > 0 {
		h.framesSent.Add(1)
	}
}

// HandleWS upgrades the request and streams frames until the viewer leaves.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	acceptOpts := &websocket.AcceptOptions{}
	if len(h.originPatterns) > 0 {
		acceptOpts.OriginPatterns = h.originPatterns
	}

	ws, err := websocket.Accept(w, r, acceptOpts)
	if err != nil {
		log.Printf("ws accept error: %v", err)
		return
	}

	// Viewers are not expected to send anything; keep the limit tight.
	ws.SetReadLimit(512)

	h.totalConnections.Add(1)
	id := fmt.Sprintf("viewer-%d", h.nextID.Add(1))
	conn := newConn(ws, id)

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	watching := len(h.conns)
	h.mu.Unlock()
	log.Printf("new viewer: %s from %s (watching: %d)", id, r.RemoteAddr, watching)

	// Use background context so the connection lives beyond the handler's
	// request context while we block below.
	go conn.WriteLoop(context.Background())
	go conn.readLoop(context.Background())

	// Block until the connection is closed. The HTTP handler must stay
	// alive to keep the underlying TCP connection open for WebSocket.
	<-conn.Done()

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	log.Printf("viewer closed: %s", id)
}

// CloseAll disconnects every viewer, for shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}
