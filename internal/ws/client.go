package ws

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 2048
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is a single websocket conversation. The session id is assigned by
// the first turn and reused for the rest of the connection.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionId string
}

// readPump reads customer messages and runs a chat turn for each. It also
// handles ping/pong keepalive and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			if !c.reply(response.Error("No message provided")) {
				break
			}
			continue
		}

		answer, err := c.hub.responder.ComposeResponse(entity.ChatRequest{
			SessionId: c.sessionId,
			Message:   text,
		})
		if err != nil {
			c.hub.log.With(sl.Err(err)).Error("compose ws response")
			if !c.reply(response.Error("Compose failed")) {
				break
			}
			continue
		}

		c.sessionId = answer.SessionId
		if !c.reply(response.Ok(answer)) {
			break
		}
	}
}

// reply queues a response for writePump. It reports false when the send
// buffer is full, which means the client stopped draining its replies; the
// caller must drop the connection rather than lose messages.
func (c *Client) reply(resp response.Response) bool {
	data, err := json.Marshal(resp)
	if err != nil {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// writePump pumps replies to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
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
