package identity

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuthService handles account registration and login
type AuthService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup registers a new account. Usernames are unique; the password is
// stored exactly as supplied.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		s.logger.Warn("Signup rejected for taken username", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user := identity.NewUser(req.Username, req.Password)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("username", req.Username), zap.Int64("user_id", user.ID))
	return &AuthResult{Message: "User created successfully"}, nil
}

// Login verifies a credential pair. An unknown username and a wrong
// password produce the same error, so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login failed", zap.String("username", req.Username))
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
		}
		return nil, err
	}

	s.logger.Info("Login successful", zap.String("username", user.Username), zap.Int64("user_id", user.ID))
	return &AuthResult{Message: "Login successful"}, nil
}
