// Package api is the HTTP adapter for the view layer: it translates requests
// into service calls and service errors into status codes. Session state
// lives in the token, never in the server.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"auction-market/internal/accounts"
	"auction-market/internal/bidding"
	"auction-market/internal/database"
	"auction-market/internal/market"
	"auction-market/pkg/errors"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	db         database.Service
	accounts   *accounts.Service
	market     *market.Service
	bidding    *bidding.Service
	validate   *validator.Validate
	sessionTTL time.Duration
}

func New(db database.Service, sessionTTL time.Duration) *Handler {
	return &Handler{
		db:         db,
		accounts:   accounts.New(db),
		market:     market.New(db),
		bidding:    bidding.New(db),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)

	mux.HandleFunc("GET /auctions", h.handleListAuctions)
	mux.Handle("POST /auctions", h.requireAuth(h.handleCreateAuction))
	mux.HandleFunc("GET /auctions/{id}/items", h.handleListItems)
	mux.Handle("POST /auctions/{id}/items", h.requireAuth(h.handleAddItem))
	mux.HandleFunc("GET /items/{id}", h.handleGetItem)

	mux.Handle("POST /items/{id}/bids", h.requireAuth(h.handlePlaceBid))
	mux.Handle("GET /me/bids", h.requireAuth(h.handleListUserBids))
	mux.Handle("DELETE /bids/{id}", h.requireAuth(h.handleDeleteBid))

	return mux
}

// decode unmarshals and validates a request body.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.WrapCode(errors.ErrInvalidInput, err, "invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.WrapCode(errors.ErrInvalidInput, err, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Error encoding response: ", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.Code(err)

	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case code == errors.ErrUsernameTaken || code == errors.ErrBidTooLow:
		status = http.StatusConflict
	case code == errors.ErrInvalidCredentials || code == errors.ErrInvalidToken:
		status = http.StatusUnauthorized
	case code == errors.ErrForbidden:
		status = http.StatusForbidden
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Storage details stay in the logs.
		log.Error("Request failed: ", err)
		message = "internal server error"
	}

	writeJSON(w, status, map[string]any{"code": code, "message": message})
}
