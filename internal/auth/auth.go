package auth

import (
	"crypto/sha256"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"auction-market/pkg/errors"
	"auction-market/pkg/types"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/hkdf"
)

// SessionCookie is the cookie the HTTP and websocket layers read tokens from.
const SessionCookie = "session-token"

const defaultSessionTTL = 24 * time.Hour

// HashPassword hashes a password with bcrypt. The same scheme is used for
// registration and login.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash against a candidate password.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.New(errors.ErrInvalidCredentials, "invalid username or password")
	}
	return nil
}

// SigningKey derives the HS256 signing key from AUTH_SECRET with HKDF-SHA256.
func SigningKey() ([]byte, error) {
	authSecret := os.Getenv("AUTH_SECRET")
	if authSecret == "" {
		return nil, errors.New(errors.ErrInternalServer, "AUTH_SECRET not set")
	}

	salt := "auction-market.session-token"
	info := "Session Token Signing Key (" + salt + ")"

	kdf := hkdf.New(sha256.New, []byte(authSecret), []byte(salt), []byte(info))

	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Wrap(err, "failed to derive signing key")
	}

	return key, nil
}

// NewSessionToken issues a signed session token for an authenticated user.
func NewSessionToken(user types.User, ttl time.Duration) (string, error) {
	key, err := SigningKey()
	if err != nil {
		return "", err
	}

	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	now := time.Now()
	token, err := jwt.NewBuilder().
		JwtID(uuid.NewString()).
		Subject(strconv.Itoa(user.ID)).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("username", user.Username).
		Claim("role", user.Role).
		Build()
	if err != nil {
		return "", errors.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), key))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return string(signed), nil
}

// ValidateToken verifies a signed session token and returns its claims.
func ValidateToken(raw string) (jwt.Token, error) {
	key, err := SigningKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256(), key),
		jwt.WithValidate(true))
	if err != nil {
		return nil, errors.WrapCode(errors.ErrInvalidToken, err, "failed to validate token")
	}

	// Check expiration
	if exp, ok := token.Expiration(); ok && exp.Before(time.Now()) {
		return nil, errors.New(errors.ErrInvalidToken, "session token expired")
	}

	return token, nil
}

// ValidateTokenFromRequest reads the session token from the session cookie or
// the Authorization header.
func ValidateTokenFromRequest(r *http.Request) (jwt.Token, error) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return ValidateToken(cookie.Value)
	}

	header := r.Header.Get("Authorization")
	if raw, ok := strings.CutPrefix(header, "Bearer "); ok {
		return ValidateToken(raw)
	}

	return nil, errors.New(errors.ErrInvalidToken, "missing session token")
}

// Username extracts the username claim from a validated token.
func Username(token jwt.Token) (string, error) {
	var username string
	if err := token.Get("username", &username); err != nil {
		return "", errors.WrapCode(errors.ErrInvalidToken, err, "token missing username claim")
	}
	return username, nil
}
