package ports

import (
	"context"

	"github.com/registrydesk/object-service/internal/core/domain"
)

// TokenIssuer mints a signed bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks a presented token string and extracts the identity it
// asserts. Verification is pure: no store round-trip, no side effects.
type TokenVerifier interface {
	Verify(tokenString string) (*domain.Identity, error)
}

// LoginResult is returned by AuthService.Login on success.
type LoginResult struct {
	Token     string
	TokenType string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
}

// AuthService exchanges credentials for a bearer token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// UserRepository is the credential store: it resolves usernames to user
// records with their password hash and assigned role.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
