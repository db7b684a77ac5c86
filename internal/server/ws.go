package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/fingerspell/internal/stabilize"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// letterMessage is the wire format for one confirmed emission.
type letterMessage struct {
	Letter     string  `json:"letter"`
	Confidence float64 `json:"confidence"`
	Repeat     bool    `json:"repeat"`
	Word       string  `json:"word"`
	Timestamp  int64   `json:"timestamp"`
}

// LettersHandler broadcasts confirmed letters to WebSocket clients. Unlike a
// polling feed it is push-driven: the pipeline calls Publish on every
// confirmed emission.
type LettersHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewLettersHandler creates a new LettersHandler.
func NewLettersHandler() *LettersHandler {
	return &LettersHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LettersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish fans one confirmed letter out to all connected clients. It runs on
// the pipeline goroutine and must not block on slow clients, so writes that
// fail are dropped along with their connection on the next read error.
func (h *LettersHandler) Publish(confirmed stabilize.Confirmed, word string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(letterMessage{
		Letter:     confirmed.Letter,
		Confidence: confirmed.Confidence,
		Repeat:     confirmed.Repeat,
		Word:       word,
		Timestamp:  confirmed.At.UnixMilli(),
	})
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(time.Second))
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// ClientCount reports the number of connected clients.
func (h *LettersHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
