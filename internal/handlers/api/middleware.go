package api

import (
	"context"
	"net/http"

	"auction-market/internal/auth"
	"auction-market/pkg/errors"
	"auction-market/pkg/types"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the authenticated user attached by requireAuth.
func UserFromContext(ctx context.Context) (types.User, bool) {
	user, ok := ctx.Value(userContextKey).(types.User)
	return user, ok
}

// requireAuth validates the session token and attaches the user to the
// request context. Everything downstream is request-scoped; there is no
// ambient session state.
func (h *Handler) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ValidateTokenFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		username, err := auth.Username(token)
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := h.db.GetUserByUsername(r.Context(), username)
		if err != nil {
			if errors.IsNotFound(err) {
				writeError(w, errors.New(errors.ErrInvalidToken, "unknown user"))
				return
			}
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
