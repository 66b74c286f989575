package websocket

import (
	"context"
	"encoding/json"

	"auction-market/pkg/errors"

	"github.com/charmbracelet/log"
)

type Message struct {
	Type string          `json:"type"` // Type of the message (e.g., "bid", "update")
	Data json.RawMessage `json:"data"` // Payload of the message
}

type BidMessage struct {
	ItemID int     `json:"item_id"`
	Amount float64 `json:"bid_amount"`
}

type BidAccepted struct {
	BidID  int     `json:"bid_id"`
	ItemID int     `json:"item_id"`
	UserID int     `json:"user_id"`
	Amount float64 `json:"bid_amount"`
}

// ParseMessage validates and parses incoming messages.
func ParseMessage(rawMessage []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(rawMessage, &msg); err != nil {
		return nil, errors.WrapCode(errors.ErrBadMessageFormat, err, "invalid message format")
	}
	if msg.Type == "" {
		return nil, errors.New(errors.ErrBadMessageFormat, "missing message type")
	}
	return &msg, nil
}

// HandleMessage routes the message based on its type.
func (h *BidFeed) HandleMessage(client *Client, rawMessage []byte) {
	if !client.RateLimiter.Allow() {
		log.Warnf("Rate limit exceeded for client %d", client.UserID)
		client.trySend([]byte(errors.New(errors.ErrRateLimited, "rate limit exceeded").ToJSON()))
		return
	}

	msg, err := ParseMessage(rawMessage)
	if err != nil {
		log.Infof("Invalid message from client %d: %v", client.UserID, err)
		client.trySend([]byte(errors.New(errors.ErrBadMessageFormat, "invalid message format").ToJSON()))
		return
	}

	switch msg.Type {
	case "join":
		log.Debug("Client joined the bid feed", "user_id", client.UserID)
	case "bid":
		h.handleBidMessage(client, msg.Data)
	default:
		log.Infof("Unknown message type: %s", msg.Type)
		client.trySend([]byte(errors.New(errors.ErrUnknownMessageType, "unknown message type").ToJSON()))
	}
}

// handleBidMessage routes a bid into the bidding service and broadcasts the
// accepted bid to every connected client.
func (h *BidFeed) handleBidMessage(client *Client, data json.RawMessage) {
	var bidMsg BidMessage
	if err := json.Unmarshal(data, &bidMsg); err != nil {
		client.trySend([]byte(errors.New(errors.ErrBadMessageFormat, "invalid bid message").ToJSON()))
		return
	}

	bid, err := h.bidding.PlaceBid(context.Background(), bidMsg.ItemID, client.UserID, bidMsg.Amount)
	if err != nil {
		var appErr *errors.AppError
		if e, ok := err.(*errors.AppError); ok {
			appErr = e
		} else {
			appErr = errors.New(errors.ErrInternalServer, "internal server error")
		}
		log.Info("Bid rejected", "user_id", client.UserID, "item_id", bidMsg.ItemID, "reason", appErr.Message)
		client.trySend([]byte(appErr.ToJSON()))
		return
	}

	accepted, err := json.Marshal(&Message{Type: "bid", Data: mustMarshal(BidAccepted{
		BidID:  bid.ID,
		ItemID: bid.ItemID,
		UserID: bid.UserID,
		Amount: bid.Amount,
	})})
	if err != nil {
		log.Error("Error marshalling bid message: ", err)
		return
	}

	h.Broadcast(accepted)
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("Error marshalling payload: ", err)
		return json.RawMessage(`{}`)
	}
	return b
}
