package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT configuration.
type Config struct {
	SecretKey  string
	Algorithm  string
	DefaultTTL time.Duration

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Claims is the claim set signed into every token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Lifetime returns ExpiresAt - IssuedAt.
func (c Claims) Lifetime() time.Duration {
	return c.ExpiresAt.Sub(c.IssuedAt)
}

type managerImpl struct {
	secretKey  []byte
	method     *jwt.SigningMethodHMAC
	defaultTTL time.Duration
	now        func() time.Time
}
