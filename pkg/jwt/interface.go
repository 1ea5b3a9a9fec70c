package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager creates and verifies signed tokens.
// Implementations are safe for concurrent use.
type Manager interface {
	// Create signs {sub, iat=now, exp=now+ttl}. A non-positive ttl selects
	// the configured default.
	Create(subject string, ttl time.Duration) (string, error)
	// Verify checks the signature and required claims. When enforceExpiry is
	// false an expired token is still returned.
	Verify(token string, enforceExpiry bool) (Claims, error)
	// DefaultTTL returns the lifetime used when Create gets ttl <= 0.
	DefaultTTL() time.Duration
}

// New validates cfg and returns a Manager.
func New(cfg Config) (Manager, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &managerImpl{
		secretKey:  []byte(cfg.SecretKey),
		method:     jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC),
		defaultTTL: cfg.DefaultTTL,
		now:        now,
	}, nil
}
