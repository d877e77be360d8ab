package utils // helper functions for session token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a signed JWT binding a browser to its
// server-side session, plus its expiry. The token carries no
// identity claims; it only names the session, and everything else
// lives in the session store.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken signs an HS256 JWT whose "sid" claim keys the
// persisted session. ttl bounds the cookie's life; the session
// store applies its own TTL independently.
func NewSessionToken(secret, sid string, ttl time.Duration) (SessionToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
