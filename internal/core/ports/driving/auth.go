package driving

import (
	"context"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/domain"
)

// AuthService authenticates the admin and validates bearer tokens
type AuthService interface {
	// Login checks the admin password and issues a token
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken validates a bearer token and returns its context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)
}
