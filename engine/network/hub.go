package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	sendBuffer = 16
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	addr string
}

// Hub fans spectator messages out to every connected websocket. A slow
// subscriber loses frames rather than stalling the match.
type Hub struct {
	Log *log.Logger

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	hello       []byte
	closed      bool
	dropped     uint64

	upgrader websocket.Upgrader
}

func NewHub(l *log.Logger, hello Hello) (*Hub, error) {
	b, err := Encode(&Message{Type: MsgHello, Hello: &hello})
	if err != nil {
		return nil, err
	}
	return &Hub{
		Log:         l,
		subscribers: make(map[*subscriber]struct{}),
		hello:       b,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// SetHello replaces the greeting sent to spectators who join from now on
func (h *Hub) SetHello(hello Hello) error {
	b, err := Encode(&Message{Type: MsgHello, Hello: &hello})
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.hello = b
	h.mu.Unlock()
	return nil
}

// ServeHTTP upgrades a spectator connection. It returns when the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	s := &subscriber{conn: conn, send: make(chan []byte, sendBuffer), addr: r.RemoteAddr}
	h.mu.Lock()
	s.send <- h.hello
	h.mu.Unlock()
	if !h.add(s) {
		conn.Close()
		return
	}
	h.Log.Info("spectator connected", "remote", s.addr, "spectators", h.Spectators())

	go h.writeLoop(s)
	h.readLoop(s)

	h.remove(s)
	h.Log.Info("spectator left", "remote", s.addr)
}

func (h *Hub) add(s *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.subscribers[s] = struct{}{}
	return true
}

func (h *Hub) remove(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.send)
	}
}

// readLoop discards anything the viewer sends; it exists to notice the close
func (h *Hub) readLoop(s *subscriber) {
	s.conn.SetReadLimit(1 << 10)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()
	for {
		select {
		case b, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				h.Log.Warn("spectator write failed", "remote", s.addr, "err", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast encodes msg once and queues it for every spectator
func (h *Hub) Broadcast(msg *Message) error {
	b, err := Encode(msg)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.New("hub closed")
	}
	for s := range h.subscribers {
		select {
		case s.send <- b:
		default:
			h.dropped++
		}
	}
	return nil
}

// Spectators is the number of connected viewers
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Dropped counts frames skipped for slow viewers
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for s := range h.subscribers {
		delete(h.subscribers, s)
		close(s.send)
	}
}
