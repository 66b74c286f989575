package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-market/internal/auth"
	"auction-market/internal/database"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) (*httptest.Server, *database.MockService) {
	t.Helper()
	t.Setenv("AUTH_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := database.NewMockService(ctrl)
	server := httptest.NewServer(New(mockDB, time.Hour).Routes())
	t.Cleanup(server.Close)
	return server, mockDB
}

func doJSON(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	server, mockDB := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		mockDB.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user types.User) (types.User, error) {
				user.ID = 1
				return user, nil
			},
		)

		resp := doJSON(t, http.MethodPost, server.URL+"/register", "",
			`{"username": "alice", "email": "alice@example.com", "password": "opensesame", "user_type": "buyer"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("duplicate_username_conflict", func(t *testing.T) {
		mockDB.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(types.User{}, errors.New(errors.ErrUsernameTaken, "username already exists"))

		resp := doJSON(t, http.MethodPost, server.URL+"/register", "",
			`{"username": "alice", "email": "other@example.com", "password": "opensesame", "user_type": "buyer"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("bad_role_rejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/register", "",
			`{"username": "bob", "email": "bob@example.com", "password": "opensesame", "user_type": "auctioneer"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("short_password_rejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/register", "",
			`{"username": "bob", "email": "bob@example.com", "password": "short", "user_type": "buyer"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	server, mockDB := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := types.User{ID: 1, Username: "alice", Password: string(hash), Role: types.RoleBuyer}

	t.Run("issues_token", func(t *testing.T) {
		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(stored, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/login", "",
			`{"username": "alice", "password": "opensesame"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotEmpty(t, body.Token)

		_, err := auth.ValidateToken(body.Token)
		require.NoError(t, err)
	})

	t.Run("wrong_password_unauthorized", func(t *testing.T) {
		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(stored, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/login", "",
			`{"username": "alice", "password": "wrong"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPlaceBidEndpoint(t *testing.T) {
	server, mockDB := newTestServer(t)

	buyer := types.User{ID: 2, Username: "buyer", Role: types.RoleBuyer}
	token, err := auth.NewSessionToken(buyer, time.Hour)
	require.NoError(t, err)

	item := types.Item{ID: 1, AuctionID: 1, Name: "Watch A", StartingBid: 100}

	t.Run("accepted", func(t *testing.T) {
		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(buyer, nil)
		mockDB.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) },
		)
		mockDB.EXPECT().GetItemForUpdateTx(gomock.Any(), gomock.Nil(), 1).Return(item, nil)
		mockDB.EXPECT().CreateBidTx(gomock.Any(), gomock.Nil(), types.Bid{ItemID: 1, UserID: 2, Amount: 150}).
			Return(types.Bid{ID: 1, ItemID: 1, UserID: 2, Amount: 150}, nil)
		mockDB.EXPECT().UpdateItemPriceTx(gomock.Any(), gomock.Nil(), 1, 150.0).Return(item, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/items/1/bids", token, `{"bid_amount": 150}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("too_low_conflict", func(t *testing.T) {
		withPrice := item
		price := 150.0
		withPrice.CurrentPrice = &price

		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(buyer, nil)
		mockDB.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) },
		)
		mockDB.EXPECT().GetItemForUpdateTx(gomock.Any(), gomock.Nil(), 1).Return(withPrice, nil)

		resp := doJSON(t, http.MethodPost, server.URL+"/items/1/bids", token, `{"bid_amount": 120}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/items/1/bids", "", `{"bid_amount": 150}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetItemEndpoint(t *testing.T) {
	server, mockDB := newTestServer(t)

	t.Run("not_found", func(t *testing.T) {
		mockDB.EXPECT().GetItemByID(gomock.Any(), 42).
			Return(types.Item{}, errors.New(errors.ErrItemNotFound, "item not found"))

		resp := doJSON(t, http.MethodGet, server.URL+"/items/42", "", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("found", func(t *testing.T) {
		mockDB.EXPECT().GetItemByID(gomock.Any(), 1).
			Return(types.Item{ID: 1, AuctionID: 1, Name: "Watch A", StartingBid: 100}, nil)

		resp := doJSON(t, http.MethodGet, server.URL+"/items/1", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var item types.Item
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		require.Equal(t, "Watch A", item.Name)
	})
}

func TestDeleteBidEndpoint(t *testing.T) {
	server, mockDB := newTestServer(t)

	admin := types.User{ID: 1, Username: "admin", Role: types.RoleAdmin}
	buyer := types.User{ID: 2, Username: "buyer", Role: types.RoleBuyer}

	adminToken, err := auth.NewSessionToken(admin, time.Hour)
	require.NoError(t, err)
	buyerToken, err := auth.NewSessionToken(buyer, time.Hour)
	require.NoError(t, err)

	t.Run("admin_deletes", func(t *testing.T) {
		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(admin, nil)
		mockDB.EXPECT().DeleteBid(gomock.Any(), 5).Return(nil)

		resp := doJSON(t, http.MethodDelete, server.URL+"/bids/5", adminToken, "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("buyer_forbidden", func(t *testing.T) {
		mockDB.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(buyer, nil)

		resp := doJSON(t, http.MethodDelete, server.URL+"/bids/5", buyerToken, "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
