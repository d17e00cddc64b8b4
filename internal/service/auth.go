package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foodbot-ai/dashboard-api/internal/core"
	domainauth "github.com/foodbot-ai/dashboard-api/internal/domain/auth"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
)

// ErrInvalidCredentials is returned when no user matches the supplied
// email and password.
var ErrInvalidCredentials = errors.New("invalid email or password")

var errSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    core.UserRepository
	Sessions core.SessionStore

	// LoginDelay is applied to every credential check before the lookup.
	LoginDelay time.Duration
	SessionTTL time.Duration
}

// AuthService checks credentials against the mirrored user list and
// manages sessions on behalf of its callers. Authenticate itself issues
// nothing; logged-in state belongs to whoever calls CreateSession.
type AuthService struct {
	users      core.UserRepository
	sessions   core.SessionStore
	loginDelay time.Duration
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AuthService{
		users:      opts.Users,
		sessions:   opts.Sessions,
		loginDelay: opts.LoginDelay,
		sessionTTL: ttl,
	}
}

// Authenticate performs the flat credential match: exact (email, password)
// against the mirrored user list, after the configured artificial delay.
// No hashing, no lockout.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	if err := s.delay(ctx); err != nil {
		return model.User{}, err
	}

	user, ok, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		return model.User{}, fmt.Errorf("credential lookup: %w", err)
	}
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CreateSession persists a new session for an authenticated user and
// returns it.
func (s *AuthService) CreateSession(ctx context.Context, user model.User) (domainauth.Session, error) {
	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, dropping it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) delay(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.loginDelay)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
