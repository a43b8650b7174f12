package jwt

import "errors"

// Token errors, checkable with errors.Is().
var (
	ErrEmptySigningKey    = errors.New("signing key cannot be empty")
	ErrSigningKeyTooShort = errors.New("signing key must be at least 16 bytes")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrExpiredToken       = errors.New("token has expired")
	ErrTokenNotYetValid   = errors.New("token is not valid yet")
)
