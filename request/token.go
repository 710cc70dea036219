package request

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kbukum/reqkit/errors"
)

// TokenSource produces a fresh authorization value on every call.
type TokenSource func() (string, error)

// Authorization schemes understood by NewTokenSource.
const (
	SchemeRandom = "random"
	SchemeUUID   = "uuid"
	SchemeJWT    = "jwt"
)

// RandomToken returns a random float in [0,1) formatted as a decimal string.
func RandomToken() (string, error) {
	return strconv.FormatFloat(rand.Float64(), 'f', -1, 64), nil
}

// UUIDToken returns a random UUIDv4.
func UUIDToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

// JWTConfig configures JWTToken.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// JWTToken returns a source of "Bearer <token>" values signed with HS256.
// Each token carries a unique jti, so consecutive values always differ.
func JWTToken(cfg JWTConfig) TokenSource {
	key := []byte(cfg.Secret)
	return func() (string, error) {
		if len(key) == 0 {
			return "", errors.InvalidInput("auth.secret", "jwt signing secret is empty")
		}
		now := time.Now()
		claims := jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   cfg.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		}
		if cfg.TTL > 0 {
			claims.ExpiresAt = jwt.NewNumericDate(now.Add(cfg.TTL))
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			return "", errors.Internal(fmt.Errorf("sign jwt: %w", err))
		}
		return "Bearer " + signed, nil
	}
}

// NewTokenSource returns the source for an AuthConfig scheme.
func NewTokenSource(cfg AuthConfig) (TokenSource, error) {
	switch cfg.Scheme {
	case "", SchemeRandom:
		return RandomToken, nil
	case SchemeUUID:
		return UUIDToken, nil
	case SchemeJWT:
		return JWTToken(JWTConfig{Secret: cfg.Secret, Issuer: cfg.Issuer, TTL: cfg.TTL}), nil
	default:
		return nil, errors.InvalidInput("auth.scheme", fmt.Sprintf("unknown scheme %q", cfg.Scheme))
	}
}
