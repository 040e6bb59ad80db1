package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/metrics"
)

// AuthService exchanges username/password credentials for a bearer token.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, ttl time.Duration, logger zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{users: users, tokens: tokens, ttl: ttl, logger: logger}
}

// Login resolves the credentials against the user store and issues a token on
// success. An unknown username and a wrong password are indistinguishable to
// the caller: both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("token issuance failed")
		return nil, err
	}

	metrics.TokensIssuedTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Info().Str("username", username).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}
