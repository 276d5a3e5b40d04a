package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/priyam/huehand/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local UI only
	},
}

// ColorFeed pushes per-frame color updates to WebSocket clients. The
// pipeline publishes into the feed; each connected browser gets the
// current entry, the raised fingers and their marker positions.
type ColorFeed struct {
	logger  *slog.Logger
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewColorFeed creates an empty feed.
func NewColorFeed(logger *slog.Logger) *ColorFeed {
	return &ColorFeed{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the connection and keeps it registered until the
// client goes away.
func (f *ColorFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.clients, conn)
		f.mu.Unlock()
	}()

	// Drain client messages to notice disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Publish sends an update to every connected client. Safe to call from the
// pipeline goroutine; a client that fails to write is dropped on its next
// read.
func (f *ColorFeed) Publish(update app.Update) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.clients) == 0 {
		return
	}

	msg, err := json.Marshal(update)
	if err != nil {
		f.logger.Error("marshal update", "err", err)
		return
	}

	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			f.logger.Debug("websocket write", "err", err)
		}
	}
}

// ClientCount returns the number of connected clients.
func (f *ColorFeed) ClientCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}
