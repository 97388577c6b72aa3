package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
)

// SessionManager exposes the upstream client's authentication state.
// SwapCredentials replaces the active credentials and logs in with them;
// ResetCredentials reverts to the configured ones and re-logs-in when they
// are present.
type SessionManager interface {
	Authenticate(ctx context.Context) error
	SwapCredentials(ctx context.Context, email, password string) error
	ResetCredentials(ctx context.Context) error
	Status() SessionStatus
}

type SessionStatus struct {
	Authenticated bool
	Email         string
}

type AuthService struct {
	sessions SessionManager
	logger   *logging.Logger
}

func NewAuthService(sessions SessionManager, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		sessions: sessions,
		logger:   logger,
	}
}

func (s *AuthService) Status(ctx context.Context) SessionStatus {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.Status")
	defer span.End()

	return s.sessions.Status()
}

// Login swaps the active session to the supplied credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (SessionStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return SessionStatus{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	if err := s.sessions.SwapCredentials(ctx, email, password); err != nil {
		return SessionStatus{}, fmt.Errorf("swap session credentials: %w", err)
	}

	return s.sessions.Status(), nil
}

// Logout drops the caller-supplied credentials and reverts to the configured
// ones. A failed re-login downgrades to an unauthenticated status instead of
// an error.
func (s *AuthService) Logout(ctx context.Context) SessionStatus {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	if err := s.sessions.ResetCredentials(ctx); err != nil {
		s.logger.WarnContext(ctx, "re-login with configured credentials failed", "error", err)
	}

	return s.sessions.Status()
}
