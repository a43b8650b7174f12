// Package jwt provides an RFC 7519 compliant JSON Web Token implementation
// using HMAC-SHA256, with standard claim validation and custom claim support.
package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Service signs and verifies tokens with a single HMAC-SHA256 key.
type Service struct {
	signingKey []byte
}

// New creates a token service from a signing key.
// The key should be cryptographically random; short keys are rejected.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrEmptySigningKey
	}
	if len(signingKey) < minKeyLen {
		return nil, ErrSigningKeyTooShort
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a token service from a string key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// minKeyLen guards against trivially brute-forceable HMAC keys.
const minKeyLen = 16

// clockSkewSeconds tolerates minor clock drift between the token issuer and
// this service when checking iat.
const clockSkewSeconds = 60

// StandardClaims are the registered claims validated by Parse.
// Embed it in a custom claims struct to add application fields.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

var headerSegment = base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

// Generate signs the given claims and returns the compact token string.
func (s *Service) Generate(claims any) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	signing := headerSegment + "." + base64.RawURLEncoding.EncodeToString(payload)
	return signing + "." + s.sign(signing), nil
}

// Parse verifies the token signature and temporal claims, then unmarshals
// the payload into claims. Signature verification happens before any payload
// decoding, and uses a constant-time comparison.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	signing := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(s.sign(signing)), []byte(parts[2])) {
		return ErrInvalidSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrInvalidToken
	}

	var std StandardClaims
	if err := json.Unmarshal(payload, &std); err != nil {
		return ErrInvalidToken
	}

	now := time.Now().Unix()
	if std.ExpiresAt != 0 && now >= std.ExpiresAt {
		return ErrExpiredToken
	}
	if std.NotBefore != 0 && now < std.NotBefore {
		return ErrTokenNotYetValid
	}
	if std.IssuedAt != 0 && std.IssuedAt > now+clockSkewSeconds {
		return ErrTokenNotYetValid
	}

	if claims != nil {
		if err := json.Unmarshal(payload, claims); err != nil {
			return ErrInvalidToken
		}
	}
	return nil
}

func (s *Service) sign(signing string) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(signing))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
