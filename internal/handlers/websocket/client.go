package websocket

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

type Client struct {
	UserID      int
	Username    string
	Role        string
	Conn        *websocket.Conn
	Send        chan []byte   // Channel for outgoing messages
	RateLimiter *rate.Limiter // Rate limiter to prevent spamming
	closed      bool          // Flag to check if the connection is closed
	mu          sync.Mutex    // Mutex to protect the closed flag
}

// trySend queues a message for the client without blocking. It reports false
// when the client is disconnected or its buffer is full. Holding the mutex
// across the send means Disconnect can never close the channel mid-send.
func (c *Client) trySend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// ReadMessages listens for incoming messages from the client.
func (c *Client) ReadMessages(handler *BidFeed) {
	defer func() {
		c.Disconnect(handler)
		log.Debugf("Connection closed for client %d", c.UserID)
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			log.Debugf("Error reading message from client %d: %v", c.UserID, err)
			break
		}
		handler.HandleMessage(c, message)
	}
}

// WriteMessages sends outgoing messages to the client.
func (c *Client) WriteMessages() {
	defer func() {
		c.Conn.Close()
	}()

	for message := range c.Send {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}

		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		c.mu.Unlock()

		if err != nil {
			log.Debugf("Error sending message to client %d: %v", c.UserID, err)
			return
		}
	}
}

// Disconnect cleans up client resources.
func (c *Client) Disconnect(handler *BidFeed) {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
	c.mu.Unlock()

	if handler != nil {
		handler.clients.Delete(c)
	}

	if c.Conn != nil {
		c.Conn.Close()
	}
	log.Debugf("Client %d cleanup completed", c.UserID)
}
