package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven/mocks"
)

func newAuthFixture(password string) *authService {
	adapter := mocks.NewMockAuthAdapter()
	hash, _ := adapter.HashPassword(password)
	svc := NewAuthService(adapter, hash, time.Hour)
	return svc.(*authService)
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthFixture("correct horse")

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Error("expected a future expiry")
	}

	auth, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("issued token must validate: %v", err)
	}
	if !auth.IsAdmin() {
		t.Error("expected admin context")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthFixture("correct horse")

	_, err := svc.Login(context.Background(), domain.LoginRequest{Password: "battery staple"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := newAuthFixture("correct horse")

	_, err := svc.Login(context.Background(), domain.LoginRequest{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(mocks.NewMockAuthAdapter(), "", time.Hour)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Password: "anything"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newAuthFixture("pw")

	_, err := svc.ValidateToken(context.Background(), "garbage")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
	_, err = svc.ValidateToken(context.Background(), "")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for empty token, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	adapter := mocks.NewMockAuthAdapter()
	token, err := adapter.GenerateToken(&domain.TokenClaims{
		Subject:   "admin",
		Role:      domain.RoleAdmin,
		IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	svc := NewAuthService(adapter, "hashed:pw", time.Hour)

	_, err = svc.ValidateToken(context.Background(), token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
