package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/victornm/pord/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The game is served from arbitrary party-host origins.
		return true
	},
}

// notification is one websocket frame: an event name plus its data.
type notification struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type wsClient struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
}

// hub fans session snapshots out to the websocket clients watching them.
type hub struct {
	mu      sync.Mutex
	clients map[string]map[*wsClient]bool
}

func newHub() *hub {
	return &hub{clients: make(map[string]map[*wsClient]bool)}
}

func (h *hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.sessionID] == nil {
		h.clients[c.sessionID] = make(map[*wsClient]bool)
	}
	h.clients[c.sessionID][c] = true
}

func (h *hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.clients[c.sessionID]; ok {
		if set[c] {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.sessionID)
		}
	}
}

// broadcast queues a frame for every watcher of a session. Slow clients
// are dropped rather than allowed to stall the rest.
func (h *hub) broadcast(sessionID string, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients[sessionID] {
		select {
		case c.send <- msg:
		default:
			delete(h.clients[sessionID], c)
			close(c.send)
		}
	}
}

// streamSession upgrades to a websocket and pushes a snapshot on every
// state change, starting with the current one.
func (a *API) streamSession(c *gin.Context) {
	s, err := a.sessions.Get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("api: websocket upgrade", "error", err)
		return
	}

	client := &wsClient{
		sessionID: s.ID(),
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	a.hub.register(client)

	if msg, err := stateFrame(s.ID(), s.State()); err == nil {
		client.send <- msg
	}

	go a.writePump(client)
	go a.readPump(client)
}

func (a *API) writePump(c *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames; the stream is one-way. It exists to
// run the pong handler and to notice the peer going away.
func (a *API) readPump(c *wsClient) {
	defer func() {
		a.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// pushStateChanged feeds the websocket hub from the event bus.
func (a *API) pushStateChanged(_ context.Context, e domain.EventStateChanged) error {
	s, err := a.sessions.Get(e.SessionID)
	if err != nil {
		// Session was removed between the event and the push.
		return nil
	}

	msg, err := stateFrame(e.SessionID, s.State())
	if err != nil {
		return fmt.Errorf("marshal state frame: %w", err)
	}

	a.hub.broadcast(e.SessionID, msg)
	return nil
}

func stateFrame(sessionID string, state any) ([]byte, error) {
	return json.Marshal(notification{
		Event: domain.EventNameStateChanged,
		Data: map[string]any{
			"sessionId": sessionID,
			"state":     state,
		},
	})
}
