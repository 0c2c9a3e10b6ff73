package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewTokenService_RejectsShortKey(t *testing.T) {
	if _, err := NewTokenService("", "iss", "aud"); !errors.Is(err, ErrSigningKeyTooWeak) {
		t.Fatalf("expected ErrSigningKeyTooWeak for empty key, got %v", err)
	}
	if _, err := NewTokenService("short", "iss", "aud"); !errors.Is(err, ErrSigningKeyTooWeak) {
		t.Fatalf("expected ErrSigningKeyTooWeak, got %v", err)
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := NewTokenService(testSigningKey, "pulsepoint", "pulsepoint-clients")
	svc.WithClock(fixedClock(issued))

	token, err := svc.Issue(&domain.User{ID: 42}, []string{domain.RoleUser, domain.RoleManager})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	p, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if p.UserID != 42 || !p.Roles.Has(domain.RoleManager) || len(p.Roles) != 2 {
		t.Fatalf("unexpected principal: %+v", p)
	}

	claims := &TokenClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != 8*time.Hour {
		t.Fatalf("expected 8h lifetime, got %v", got)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestTokenService_NoRolesEncodesEmptyList(t *testing.T) {
	svc, _ := NewTokenService(testSigningKey, "pulsepoint", "pulsepoint-clients")
	token, _ := svc.Issue(&domain.User{ID: 1}, nil)

	p, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(p.Roles) != 0 {
		t.Fatalf("expected no roles, got %v", p.Roles)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := NewTokenService(testSigningKey, "pulsepoint", "pulsepoint-clients")
	svc.WithClock(fixedClock(issued))
	token, _ := svc.Issue(&domain.User{ID: 7}, []string{domain.RoleUser})

	svc.WithClock(fixedClock(issued.Add(8*time.Hour - time.Second)))
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	svc.WithClock(fixedClock(issued.Add(8*time.Hour + time.Second)))
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	svc, _ := NewTokenService(testSigningKey, "pulsepoint", "pulsepoint-clients")
	token, _ := svc.Issue(&domain.User{ID: 7}, nil)

	tests := []struct {
		name     string
		verifier func() *TokenService
	}{
		{"wrong key", func() *TokenService {
			s, _ := NewTokenService("ffffffffffffffffffffffffffffffff", "pulsepoint", "pulsepoint-clients")
			return s
		}},
		{"wrong issuer", func() *TokenService {
			s, _ := NewTokenService(testSigningKey, "someone-else", "pulsepoint-clients")
			return s
		}},
		{"wrong audience", func() *TokenService {
			s, _ := NewTokenService(testSigningKey, "pulsepoint", "other-clients")
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.verifier().Verify(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc, _ := NewTokenService(testSigningKey, "pulsepoint", "pulsepoint-clients")
	claims := TokenClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "pulsepoint",
		Audience:  jwt.ClaimStrings{"pulsepoint-clients"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}
}
