package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/serr"
)

// Session token configuration
const (
	// SessionTokenIssuer identifies the application that issued the cookie
	SessionTokenIssuer = "aqiform"

	// MinSecretLength is the minimum acceptable length for the signing secret
	MinSecretLength = 32

	// DevSessionSecret is used when no secret is configured. Development only.
	DevSessionSecret = "development-only-secret-do-not-use-in-production"
)

// SessionClaims names the page session a browser cookie belongs to
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// TokenSigner signs and verifies session cookie values
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner returns a signer for secret; tokens expire after ttl
func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if len(secret) < MinSecretLength {
		return nil, serr.New("session secret must be at least 32 characters")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenSigner{secret: []byte(secret), ttl: ttl}, nil
}

// Sign issues a token naming sessionID
func (ts *TokenSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionTokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign session token")
	}
	return signed, nil
}

// Verify returns the session id carried by a valid token
func (ts *TokenSigner) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return ts.secret, nil
	}, jwt.WithIssuer(SessionTokenIssuer))
	if err != nil {
		return "", serr.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", serr.New("invalid session token claims")
	}
	return claims.SessionID, nil
}
