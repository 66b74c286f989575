// Package bidding enforces the bid acceptance rule and keeps item prices
// consistent with the accepted bid log.
package bidding

import (
	"context"
	"database/sql"

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

// PlaceBid validates and commits a bid against an item. The read of the
// current price, the floor check, the bid insert and the price update all run
// in one serializable transaction with the item row locked, so concurrent
// bids on the same item serialize and can never both be accepted against the
// same stale floor. A bid equal to the floor is accepted.
func (s *Service) PlaceBid(ctx context.Context, itemID, userID int, amount float64) (types.Bid, error) {
	if itemID <= 0 || userID <= 0 {
		return types.Bid{}, errors.New(errors.ErrInvalidBid, "missing item or user")
	}
	if amount <= 0 {
		return types.Bid{}, errors.New(errors.ErrInvalidBid, "bid amount must be positive")
	}

	var placed types.Bid
	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		item, err := s.db.GetItemForUpdateTx(ctx, tx, itemID)
		if err != nil {
			return err
		}

		floor := item.FloorPrice()
		if amount < floor {
			return errors.Newf(errors.ErrBidTooLow, "bid of %.2f is below the floor price %.2f", amount, floor)
		}

		bid, err := s.db.CreateBidTx(ctx, tx, types.Bid{
			ItemID: itemID,
			UserID: userID,
			Amount: amount,
		})
		if err != nil {
			return err
		}

		if _, err := s.db.UpdateItemPriceTx(ctx, tx, itemID, amount); err != nil {
			return err
		}

		placed = bid
		return nil
	})
	if err != nil {
		return types.Bid{}, err
	}

	log.Debug("Bid accepted", "bid_id", placed.ID, "item_id", itemID, "amount", amount)
	return placed, nil
}

// ListUserBids returns all bids by a user joined with item and auction names.
func (s *Service) ListUserBids(ctx context.Context, userID int) ([]types.UserBid, error) {
	if userID <= 0 {
		return nil, errors.New(errors.ErrInvalidInput, "missing user")
	}
	return s.db.GetUserBids(ctx, userID)
}

// RemoveBid deletes a single bid row. Administrative operation; it is not
// part of any bidding workflow and does not recompute item prices.
func (s *Service) RemoveBid(ctx context.Context, actor types.User, bidID int) error {
	if actor.Role != types.RoleAdmin {
		return errors.New(errors.ErrForbidden, "only admins can remove bids")
	}
	if err := s.db.DeleteBid(ctx, bidID); err != nil {
		return err
	}
	log.Warn("Bid removed", "bid_id", bidID, "admin_id", actor.ID)
	return nil
}
