// Package market covers the auction and item workflow: creating auctions,
// adding inventory and browsing what is open for bidding.
package market

import (
	"context"
	"time"

	"auction-market/internal/database"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/charmbracelet/log"
)

type Service struct {
	db database.Service
}

func New(db database.Service) *Service {
	return &Service{db: db}
}

// CreateAuction opens a new auction owned by actor. The current price starts
// at the starting price. End-time sanity is the caller's concern; the store
// only filters expired auctions at read time.
func (s *Service) CreateAuction(ctx context.Context, actor types.User, title, description string, startingPrice float64, endTime time.Time) (types.Auction, error) {
	if actor.Role != types.RoleSeller && actor.Role != types.RoleAdmin {
		return types.Auction{}, errors.New(errors.ErrForbidden, "only sellers and admins can create auctions")
	}
	if title == "" {
		return types.Auction{}, errors.New(errors.ErrInvalidInput, "auction title is required")
	}
	if startingPrice < 0 {
		return types.Auction{}, errors.New(errors.ErrInvalidInput, "starting price cannot be negative")
	}

	auction, err := s.db.CreateAuction(ctx, types.Auction{
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		EndTime:       endTime,
		CreatedBy:     actor.ID,
	})
	if err != nil {
		return types.Auction{}, err
	}

	log.Info("Auction created", "auction_id", auction.ID, "created_by", actor.ID)
	return auction, nil
}

// AddItem adds inventory to an auction. The item has no current price until
// its first accepted bid; its floor is the starting bid.
func (s *Service) AddItem(ctx context.Context, actor types.User, auctionID int, name, description string, startingBid float64, imageURL *string) (types.Item, error) {
	if actor.Role != types.RoleSeller && actor.Role != types.RoleAdmin {
		return types.Item{}, errors.New(errors.ErrForbidden, "only sellers and admins can add items")
	}
	if name == "" {
		return types.Item{}, errors.New(errors.ErrInvalidInput, "item name is required")
	}
	if startingBid < 0 {
		return types.Item{}, errors.New(errors.ErrInvalidInput, "starting bid cannot be negative")
	}

	if _, err := s.db.GetAuctionByID(ctx, auctionID); err != nil {
		return types.Item{}, err
	}

	item, err := s.db.CreateItem(ctx, types.Item{
		AuctionID:   auctionID,
		Name:        name,
		Description: description,
		StartingBid: startingBid,
		ImageURL:    imageURL,
	})
	if err != nil {
		return types.Item{}, err
	}

	log.Info("Item added", "item_id", item.ID, "auction_id", auctionID)
	return item, nil
}

// ListActiveAuctions returns auctions whose end time has not passed.
func (s *Service) ListActiveAuctions(ctx context.Context) ([]types.Auction, error) {
	return s.db.GetActiveAuctions(ctx)
}

// ListItems returns all items belonging to an auction.
func (s *Service) ListItems(ctx context.Context, auctionID int) ([]types.Item, error) {
	return s.db.GetItemsByAuction(ctx, auctionID)
}

// GetItem returns a single item or a not-found error, never a zero item.
func (s *Service) GetItem(ctx context.Context, itemID int) (types.Item, error) {
	return s.db.GetItemByID(ctx, itemID)
}
