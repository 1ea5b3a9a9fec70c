package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Create generates a new token for subject.
func (m *managerImpl) Create(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrInvalidSubject
	}
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(m.method, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses tokenString and returns its claims.
func (m *managerImpl) Verify(tokenString string, enforceExpiry bool) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if enforceExpiry {
		opts = append(opts, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var rc jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &rc, m.keyFunc, opts...)
	if err != nil {
		// The signature is checked before claims, so an expired error implies
		// a valid signature.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		if errors.Is(err, jwt.ErrTokenRequiredClaimMissing) {
			return Claims{}, fmt.Errorf("%w: %v", ErrMissingClaims, err)
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Claims{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	if rc.Subject == "" || rc.IssuedAt == nil || rc.ExpiresAt == nil {
		return Claims{}, ErrMissingClaims
	}

	return Claims{
		Subject:   rc.Subject,
		IssuedAt:  rc.IssuedAt.Time,
		ExpiresAt: rc.ExpiresAt.Time,
	}, nil
}

func (m *managerImpl) DefaultTTL() time.Duration {
	return m.defaultTTL
}

func (m *managerImpl) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return m.secretKey, nil
}
