package server

import (
	"encoding/json"
	"log"

	"trumphand/internal/protocol"

	"github.com/gorilla/websocket"
)

// Client represents a single WebSocket connection watching the results feed.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string
}

// ReadPump handles incoming messages from the WebSocket connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error from client %s: %v", c.ID, err)
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Printf("Error unmarshalling message from client %s: %v", c.ID, err)
			continue
		}

		if msg.Type != protocol.TypePing {
			log.Printf("Received message type '%s' from client %s", msg.Type, c.ID)
		}
		c.hub.processMessage <- clientMessage{client: c, message: msg}
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Write error to client %s: %v", c.ID, err)
			break
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
