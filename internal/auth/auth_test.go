package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"auction-market/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/require"
)

var testUser = types.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: types.RoleBuyer}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("opensesame")
	require.NoError(t, err)
	require.NotEqual(t, "opensesame", hash)

	require.NoError(t, CheckPassword(hash, "opensesame"))
	require.Error(t, CheckPassword(hash, "wrong"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	raw, err := NewSessionToken(testUser, time.Hour)
	require.NoError(t, err)

	token, err := ValidateToken(raw)
	require.NoError(t, err)

	sub, ok := token.Subject()
	require.True(t, ok)
	require.Equal(t, strconv.Itoa(testUser.ID), sub)

	username, err := Username(token)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	raw, err := NewSessionToken(testUser, time.Hour)
	require.NoError(t, err)

	t.Setenv("AUTH_SECRET", "other-secret")
	_, err = ValidateToken(raw)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	key, err := SigningKey()
	require.NoError(t, err)

	now := time.Now()
	token, err := jwt.NewBuilder().
		Subject(strconv.Itoa(testUser.ID)).
		IssuedAt(now.Add(-2 * time.Hour)).
		Expiration(now.Add(-time.Hour)).
		Claim("username", testUser.Username).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), key))
	require.NoError(t, err)

	_, err = ValidateToken(string(signed))
	require.Error(t, err)
}

func TestValidateTokenFromRequest(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	raw, err := NewSessionToken(testUser, time.Hour)
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: raw})

		token, err := ValidateTokenFromRequest(r)
		require.NoError(t, err)
		require.NotNil(t, token)
	})

	t.Run("bearer_header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+raw)

		token, err := ValidateTokenFromRequest(r)
		require.NoError(t, err)
		require.NotNil(t, token)
	})

	t.Run("missing_token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := ValidateTokenFromRequest(r)
		require.Error(t, err)
	})
}
