package errors

import (
	"encoding/json"
	"fmt"
)

type AppError struct {
	Code    int    // Error code, grouped by category
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

// Not found (1xxx)
const (
	ErrUserNotFound    = 1001
	ErrAuctionNotFound = 1002
	ErrItemNotFound    = 1003
	ErrBidNotFound     = 1004
)

// Validation (2xxx)
const (
	ErrBidTooLow          = 2001
	ErrInvalidBid         = 2002
	ErrUsernameTaken      = 2003
	ErrInvalidCredentials = 2004
	ErrInvalidRole        = 2005
	ErrForbidden          = 2006
	ErrBadMessageFormat   = 2007
	ErrUnknownMessageType = 2008
	ErrRateLimited        = 2009
	ErrInvalidToken       = 2010
	ErrInvalidInput       = 2011
)

// Storage and internal (3xxx, 500)
const (
	ErrStorage        = 3001
	ErrInternalServer = 500
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code so callers can use errors.Is with sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Error creation utility
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Newf(code int, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrapping utility
func Wrap(err error, message string) *AppError {
	return &AppError{Code: ErrStorage, Message: message, Err: err}
}

func WrapCode(code int, err error, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Code extracts the error code, defaulting to ErrInternalServer.
func Code(err error) int {
	var appErr *AppError
	for err != nil {
		if e, ok := err.(*AppError); ok {
			appErr = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if appErr == nil {
		return ErrInternalServer
	}
	return appErr.Code
}

func IsNotFound(err error) bool {
	c := Code(err)
	return c >= 1000 && c < 2000
}

func IsValidation(err error) bool {
	c := Code(err)
	return c >= 2000 && c < 3000
}

func IsStorage(err error) bool {
	c := Code(err)
	return c >= 3000 && c < 4000
}

// ToJSON renders the error as a wire frame for websocket clients.
func (e *AppError) ToJSON() string {
	frame := struct {
		Type    string `json:"type"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{Type: "error", Code: e.Code, Message: e.Message}

	b, err := json.Marshal(frame)
	if err != nil {
		return `{"type": "error", "message": "internal server error"}`
	}
	return string(b)
}
