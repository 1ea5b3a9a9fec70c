package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	if _, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC); !ok {
		return fmt.Errorf("jwt: unsupported algorithm %q, only HMAC methods are allowed", cfg.Algorithm)
	}
	if cfg.DefaultTTL < 0 {
		return fmt.Errorf("jwt: default ttl must be positive, got %s", cfg.DefaultTTL)
	}
	return nil
}
