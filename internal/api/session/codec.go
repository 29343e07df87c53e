// Package session encodes the session reference carried by the client.
//
// The cookie value is an HS256 JWT whose only claim of interest is the
// session ID; the session data itself lives server-side in Redis. Signing
// the token keeps session IDs unguessable and tamper-evident without the
// server having to trust anything in the cookie.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "storefront_session"

var ErrInvalidToken = errors.New("invalid session token")

// Codec signs and verifies session cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. ttl bounds the cookie lifetime independently
// of the Redis record's TTL; zero falls back to 24h.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured cookie lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode wraps a session ID in a signed token.
func (c *Codec) Encode(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the token and extracts the session ID. The signing
// algorithm is pinned to HS256.
func (c *Codec) Decode(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
