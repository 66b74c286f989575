// Package websocket streams accepted bids to connected clients and accepts
// bid messages over the same connection.
package websocket

import (
	"net/http"
	"sync"

	"auction-market/internal/auth"
	"auction-market/internal/bidding"
	"auction-market/internal/database"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

type BidFeed struct {
	db      database.Service
	bidding *bidding.Service

	clients sync.Map // *Client -> struct{}

	rateLimit      rate.Limit
	rateBurst      int
	maxMessageSize int64
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewBidFeed(db database.Service, rateLimit float64, rateBurst, maxMessageSize int) *BidFeed {
	if rateLimit <= 0 {
		rateLimit = 1
	}
	if rateBurst <= 0 {
		rateBurst = 3
	}
	if maxMessageSize <= 0 {
		maxMessageSize = 1024
	}
	return &BidFeed{
		db:             db,
		bidding:        bidding.New(db),
		rateLimit:      rate.Limit(rateLimit),
		rateBurst:      rateBurst,
		maxMessageSize: int64(maxMessageSize),
	}
}

// HandleBidFeed authenticates the request and upgrades it to a WebSocket
// connection joined to the bid feed.
func (h *BidFeed) HandleBidFeed(w http.ResponseWriter, r *http.Request) {
	token, err := auth.ValidateTokenFromRequest(r)
	if err != nil || token == nil {
		log.Error("Invalid token: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	username, err := auth.Username(token)
	if err != nil {
		log.Error("Error retrieving username from token claims")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.db.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Error("User not found: ", err)
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	conn.SetReadLimit(h.maxMessageSize)

	client := &Client{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Conn:        conn,
		Send:        make(chan []byte, 16),
		RateLimiter: rate.NewLimiter(h.rateLimit, h.rateBurst),
	}

	h.clients.Store(client, struct{}{})

	go client.ReadMessages(h)
	go client.WriteMessages()

	log.Debugf("Client %d joined the bid feed", user.ID)
}

// Broadcast sends a message to all connected clients. Clients with a full
// send buffer are dropped from the feed.
func (h *BidFeed) Broadcast(message []byte) {
	h.clients.Range(func(key, _ any) bool {
		client := key.(*Client)
		if !client.trySend(message) {
			h.clients.Delete(client)
			client.Disconnect(nil)
		}
		return true
	})
}
