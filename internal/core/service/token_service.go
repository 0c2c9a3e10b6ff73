package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// TokenLifetime is fixed; tokens are not renewable.
const TokenLifetime = 8 * time.Hour

// MinSigningKeyLength is the shortest HS256 key accepted (256 bits).
const MinSigningKeyLength = 32

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrSigningKeyTooWeak = errors.New("jwt signing key must be at least 32 bytes")
)

// TokenClaims is the JWT payload: the identity id travels in "sub" and every
// role membership in "roles".
type TokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	key      []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewTokenService fails when the signing key is missing or too short; callers
// treat that as a fatal startup condition.
func NewTokenService(key, issuer, audience string) (*TokenService, error) {
	if len(key) < MinSigningKeyLength {
		return nil, ErrSigningKeyTooWeak
	}
	return &TokenService{
		key:      []byte(key),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}, nil
}

// WithClock replaces the time source. Used by tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for user carrying the given roles.
func (s *TokenService) Issue(user *domain.User, roles []string) (string, error) {
	now := s.now()
	if roles == nil {
		roles = []string{}
	}
	claims := TokenClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			ID:        uuid.NewString(),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry, then
// returns the principal the token asserts.
func (s *TokenService) Verify(token string) (domain.Principal, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, ErrTokenExpired
		}
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return domain.Principal{UserID: id, Roles: domain.Roles(claims.Roles)}, nil
}
