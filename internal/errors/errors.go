package errors

import (
	"errors"
	"fmt"
)

// Common error types for the museum web server
var (
	// Session errors
	ErrNoSession = errors.New("no session")

	// Token errors
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("malformed token")

	// Identity provider errors
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrProviderRejected    = errors.New("identity provider rejected request")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// Museum API errors
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("museum api unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
