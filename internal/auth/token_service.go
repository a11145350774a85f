package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed session token lifetime: 604,800 seconds. There is
// no sliding renewal; a token is valid until issuance + TokenTTL no matter
// how active the session is.
const TokenTTL = 7 * 24 * time.Hour

// TokenService signs identity claims into HS256 JWTs and validates them
// back. It is pure given (secret, clock, input): no persistence, no I/O.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	logger     Logger
	now        func() time.Time
}

// NewTokenService creates the token codec. An empty signing key is a
// configuration error: callers must treat it as fatal at startup, never as
// a per-request condition.
func NewTokenService(signingKey []byte, logger Logger) (*TokenService, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningSecret
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: signingKey,
		ttl:        TokenTTL,
		issuer:     "taskflow",
		logger:     logger,
		now:        time.Now,
	}, nil
}

// WithClock overrides the clock. Used by tests to pin issuance and
// verification times.
func (ts *TokenService) WithClock(now func() time.Time) *TokenService {
	if now != nil {
		ts.now = now
	}
	return ts
}

// WithTTL overrides the token lifetime.
func (ts *TokenService) WithTTL(ttl time.Duration) *TokenService {
	if ttl > 0 {
		ts.ttl = ttl
	}
	return ts
}

// TTL returns the configured token lifetime.
func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

// Sign encodes the identity into a signed, time limited bearer token.
func (ts *TokenService) Sign(identity Identity) (string, error) {
	now := ts.now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		Email:    identity.Email,
		UserRole: identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string, returning the claim set or
// one of the typed verification failures: ErrTokenMalformed,
// ErrTokenExpired, ErrTokenSignatureInvalid.
func (ts *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate rejected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithTimeFunc(ts.now), jwt.WithIssuer(ts.issuer))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("token validate could not decode claims")
		return nil, ErrTokenMalformed
	}

	// Reject roles outside the closed set at the codec boundary.
	if !claims.UserRole.IsValid() {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
