package jwt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is returned for a bad signature, an unexpected algorithm
	// or a token that cannot be parsed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the signature is valid but exp has
	// passed and expiry is enforced.
	ErrExpiredToken = errors.New("token has expired")
	// ErrMissingClaims is returned when sub, iat or exp is absent. It wraps
	// ErrInvalidToken.
	ErrMissingClaims = fmt.Errorf("%w: token missing required fields", ErrInvalidToken)
	// ErrInvalidSubject is returned by Create for an empty subject.
	ErrInvalidSubject = errors.New("subject must not be empty")
)
