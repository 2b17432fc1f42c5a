package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Csprier/marvel-server/internal/models"
)

// defaultTokenTTL matches the original deployment default of 7 days.
const defaultTokenTTL = 7 * 24 * time.Hour

// Claims is the signed token payload: the public user projection at
// issuance time, plus the registered subject/expiry fields. The
// embedded projection may be stale relative to storage; anything that
// needs current data must re-read the directory.
type Claims struct {
	User models.PublicUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. The
// secret is injected at construction so tests can swap it per run; now
// is swappable for expiry tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a token service. An empty secret is a fatal
// configuration error, not a per-request one.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSigningKeyMissing
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user with subject = username and
// absolute expiry = now + TTL.
func (s *TokenService) Issue(user models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSigningKeyMissing
	}

	now := s.now()
	claims := &Claims{
		User: user.Public(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry and every other failure are kept apart so the caller can
// answer "expired" versus "invalid".
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
