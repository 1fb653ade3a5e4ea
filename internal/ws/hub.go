package ws

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"log/slog"
	"net/http"
)

// Responder runs chat turns for websocket clients.
type Responder interface {
	ComposeResponse(msg entity.ChatRequest) (*entity.ChatReply, error)
	ResetConversation(sessionId string) error
}

// Hub maintains the set of active websocket conversations. Each connection
// is one conversation; its context is dropped when the connection closes.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	responder  Responder
	log        *slog.Logger
}

func NewHub(responder Responder, log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		responder:  responder,
		log:        log.With(sl.Module("ws.hub")),
	}
}

// Run tracks connect/disconnect events. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.With(
				slog.Int("clients", len(h.clients)),
			).Debug("chat client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; !ok {
				continue
			}
			delete(h.clients, client)
			close(client.send)

			// The conversation ended with the connection; its context
			// must not survive.
			if client.sessionId != "" {
				if err := h.responder.ResetConversation(client.sessionId); err != nil {
					h.log.With(sl.Err(err)).Error("reset conversation on disconnect")
				}
			}
			h.log.With(
				slog.Int("clients", len(h.clients)),
			).Debug("chat client disconnected")
		}
	}
}

// ServeChat upgrades the request and starts the connection pumps.
func ServeChat(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.With(sl.Err(err)).Error("websocket upgrade")
			return
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan []byte, 16),
		}
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
