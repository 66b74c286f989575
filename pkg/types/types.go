package types

import (
	"time"
)

// User roles. A user's role is fixed at registration.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller || role == RoleAdmin
}

type User struct {
	ID       int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"user_type"`
}

type Auction struct {
	ID            int       `json:"auction_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price"`
	CurrentPrice  float64   `json:"current_price"`
	EndTime       time.Time `json:"auction_end_time"`
	CreatedBy     int       `json:"created_by"`
}

// Active reports whether the auction is still open for bidding at t.
func (a Auction) Active(t time.Time) bool {
	return a.EndTime.After(t)
}

type Item struct {
	ID           int      `json:"item_id"`
	AuctionID    int      `json:"auction_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
	StartingBid  float64  `json:"starting_bid"`
	ImageURL     *string  `json:"image_url,omitempty"`
}

// FloorPrice is the minimum acceptable amount for the next bid on the item:
// the current price when bids exist, otherwise the starting bid.
func (i Item) FloorPrice() float64 {
	if i.CurrentPrice != nil {
		return *i.CurrentPrice
	}
	return i.StartingBid
}

type Bid struct {
	ID        int       `json:"bid_id"`
	ItemID    int       `json:"item_id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"bid_amount"`
	CreatedAt time.Time `json:"created_at"`
}

// UserBid is a bid joined with the item and auction it was placed under.
type UserBid struct {
	BidID        int     `json:"bid_id"`
	AuctionTitle string  `json:"auction_title"`
	ItemName     string  `json:"item_name"`
	Amount       float64 `json:"bid_amount"`
}
