// Package token implements the signed session token minted on login and
// registration. Tokens are stateless: nothing is persisted server-side, and
// a verified token is honored until its embedded expiry regardless of later
// server-side state changes. Logout only clears the cookie.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrAbsent indicates that no token was presented at all.
	ErrAbsent = errors.New("no session token presented")
	// ErrInvalid indicates a token that failed verification: bad signature,
	// malformed encoding, expired, or minted for a different issuer.
	ErrInvalid = errors.New("invalid session token")
)

// issuer is a fixed claim embedded in every token and checked on verify.
const issuer = "inkwell"

// Claims are the fields embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	Username string `json:"name"`
}

// Codec signs and verifies session tokens with a shared symmetric secret.
// The zero value is not usable; construct with New.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New creates a codec. The secret is supplied out of band (config); an
// empty secret is rejected at startup by the config layer, not here.
func New(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// TTL reports the configured token lifetime. The HTTP adapter uses it for
// the cookie max-age so cookie and token expire together.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the given identity.
func (c *Codec) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:   userID,
		Username: username,
	})
	return tok.SignedString(c.secret)
}

// Verify checks signature integrity, expiry, and the fixed issuer claim.
// It returns ErrAbsent for an empty token and ErrInvalid for everything
// else that fails; callers collapse both to anonymous but tests rely on
// the distinction.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrAbsent
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
