package api

import (
	"net/http"
	"strconv"
	"time"

	"auction-market/internal/auth"
	"auction-market/pkg/errors"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"user_type" validate:"required,oneof=buyer seller admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createAuctionRequest struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price" validate:"gte=0"`
	EndTime       time.Time `json:"auction_end_time" validate:"required"`
}

type addItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	StartingBid float64 `json:"starting_bid" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type placeBidRequest struct {
	Amount float64 `json:"bid_amount" validate:"required,gt=0"`
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, errors.New(errors.ErrInvalidInput, "invalid id in path")
	}
	return id, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.db.Health())
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := auth.NewSessionToken(user, h.sessionTTL)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (h *Handler) handleListAuctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.market.ListActiveAuctions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, auctions)
}

func (h *Handler) handleCreateAuction(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, errors.New(errors.ErrInvalidToken, "missing session"))
		return
	}

	var req createAuctionRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	auction, err := h.market.CreateAuction(r.Context(), user, req.Title, req.Description, req.StartingPrice, req.EndTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, auction)
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	auctionID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.market.ListItems(r.Context(), auctionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, errors.New(errors.ErrInvalidToken, "missing session"))
		return
	}

	auctionID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addItemRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.market.AddItem(r.Context(), user, auctionID, req.Name, req.Description, req.StartingBid, req.ImageURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.market.GetItem(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, errors.New(errors.ErrInvalidToken, "missing session"))
		return
	}

	itemID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req placeBidRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bid, err := h.bidding.PlaceBid(r.Context(), itemID, user.ID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bid)
}

func (h *Handler) handleListUserBids(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, errors.New(errors.ErrInvalidToken, "missing session"))
		return
	}

	bids, err := h.bidding.ListUserBids(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

func (h *Handler) handleDeleteBid(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, errors.New(errors.ErrInvalidToken, "missing session"))
		return
	}

	bidID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.bidding.RemoveBid(r.Context(), user, bidID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
