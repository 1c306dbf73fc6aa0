package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

// SymmetricKeyLength is the key size required by PASETO v2 local tokens.
const SymmetricKeyLength = 32

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenClaims is the data sealed inside a session token.
type TokenClaims struct {
	SessionID string    `json:"sid"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	Expiry    time.Time `json:"expiry"`
}

// TokenIssuer seals and opens PASETO v2 local tokens with one symmetric key.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
	v2  *paseto.V2
}

// NewTokenIssuer checks the key length and returns an issuer whose tokens
// expire after ttl.
func NewTokenIssuer(symmetricKey string, ttl time.Duration) (*TokenIssuer, error) {
	if len(symmetricKey) != SymmetricKeyLength {
		return nil, fmt.Errorf("SYMMETRIC_KEY must be %d bytes long, got %d", SymmetricKeyLength, len(symmetricKey))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", ttl)
	}
	return &TokenIssuer{
		key: []byte(symmetricKey),
		ttl: ttl,
		now: time.Now,
		v2:  paseto.NewV2(),
	}, nil
}

// TTL returns the lifetime of issued tokens.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue seals a token for the given session.
func (i *TokenIssuer) Issue(sessionID string, userID int64, role string) (string, TokenClaims, error) {
	claims := TokenClaims{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		Expiry:    i.now().Add(i.ttl),
	}
	token, err := i.v2.Encrypt(i.key, claims, nil)
	if err != nil {
		return "", TokenClaims{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, claims, nil
}

// Parse opens a token and rejects it once expired.
func (i *TokenIssuer) Parse(token string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := i.v2.Decrypt(token, i.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.SessionID == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if i.now().After(claims.Expiry) {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}
