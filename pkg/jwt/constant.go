package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum accepted length of the HMAC secret.
	MinSecretKeyLen = 32
	// DefaultAlgorithm is the signing algorithm used when none is configured.
	DefaultAlgorithm = "HS256"
	// DefaultTTL is the token lifetime used when none is configured (one year).
	DefaultTTL = 8760 * time.Hour
)
