package market

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"auction-market/internal/database"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCreateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockService(ctrl)
	service := New(mockDB)

	seller := types.User{ID: 1, Role: types.RoleSeller}
	buyer := types.User{ID: 2, Role: types.RoleBuyer}
	endTime := time.Now().Add(48 * time.Hour)

	t.Run("current_price_starts_at_starting_price", func(t *testing.T) {
		mockDB.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, auction types.Auction) (types.Auction, error) {
				require.Equal(t, 100.0, auction.StartingPrice)
				require.Equal(t, 100.0, auction.CurrentPrice)
				require.Equal(t, seller.ID, auction.CreatedBy)
				auction.ID = 1
				return auction, nil
			},
		)

		auction, err := service.CreateAuction(context.Background(), seller, "Vintage Watch", "rare pieces", 100, endTime)
		require.NoError(t, err)
		require.Equal(t, 1, auction.ID)
	})

	t.Run("buyer_forbidden", func(t *testing.T) {
		_, err := service.CreateAuction(context.Background(), buyer, "Vintage Watch", "", 100, endTime)
		require.Error(t, err)
		require.True(t, stderrors.Is(err, errors.New(errors.ErrForbidden, "")))
	})

	t.Run("missing_title", func(t *testing.T) {
		_, err := service.CreateAuction(context.Background(), seller, "", "", 100, endTime)
		require.True(t, stderrors.Is(err, errors.New(errors.ErrInvalidInput, "")))
	})

	t.Run("negative_starting_price", func(t *testing.T) {
		_, err := service.CreateAuction(context.Background(), seller, "Vintage Watch", "", -1, endTime)
		require.True(t, stderrors.Is(err, errors.New(errors.ErrInvalidInput, "")))
	})
}

func TestAddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockService(ctrl)
	service := New(mockDB)

	seller := types.User{ID: 1, Role: types.RoleSeller}
	buyer := types.User{ID: 2, Role: types.RoleBuyer}

	t.Run("item_added_without_current_price", func(t *testing.T) {
		mockDB.EXPECT().GetAuctionByID(gomock.Any(), 1).Return(types.Auction{ID: 1}, nil)
		mockDB.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item types.Item) (types.Item, error) {
				require.Nil(t, item.CurrentPrice)
				require.Equal(t, 100.0, item.StartingBid)
				item.ID = 1
				return item, nil
			},
		)

		item, err := service.AddItem(context.Background(), seller, 1, "Watch A", "", 100, nil)
		require.NoError(t, err)
		require.Equal(t, 100.0, item.FloorPrice())
	})

	t.Run("unknown_auction", func(t *testing.T) {
		mockDB.EXPECT().GetAuctionByID(gomock.Any(), 42).
			Return(types.Auction{}, errors.New(errors.ErrAuctionNotFound, "auction not found"))

		_, err := service.AddItem(context.Background(), seller, 42, "Watch A", "", 100, nil)
		require.True(t, errors.IsNotFound(err))
	})

	t.Run("buyer_forbidden", func(t *testing.T) {
		_, err := service.AddItem(context.Background(), buyer, 1, "Watch A", "", 100, nil)
		require.True(t, stderrors.Is(err, errors.New(errors.ErrForbidden, "")))
	})
}

func TestGetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockService(ctrl)
	service := New(mockDB)

	t.Run("not_found_is_not_a_zero_item", func(t *testing.T) {
		mockDB.EXPECT().GetItemByID(gomock.Any(), 42).
			Return(types.Item{}, errors.New(errors.ErrItemNotFound, "item not found"))

		_, err := service.GetItem(context.Background(), 42)
		require.Error(t, err)
		require.True(t, errors.IsNotFound(err))
	})
}

func TestListActiveAuctions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockService(ctrl)
	service := New(mockDB)

	expected := []types.Auction{{ID: 1, Title: "Vintage Watch", EndTime: time.Now().Add(time.Hour)}}
	mockDB.EXPECT().GetActiveAuctions(gomock.Any()).Return(expected, nil)

	auctions, err := service.ListActiveAuctions(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, auctions)
}
