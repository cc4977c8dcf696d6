package store

import (
	"context"
	"fmt"
	"sync"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/ports"
	"github.com/dubaitostars/starclient/pkg/token"
)

const (
	ErrMsgSessionExpired = "Session expired. Please login again."
	ErrMsgLoginFailed    = "Login failed. Please check your credentials."
	ErrMsgRegisterFailed = "Registration failed. Please try again."
)

// AuthStore holds the current session: the cached user object and the
// authenticated flag. The token itself lives in the TokenStore so it
// survives process restarts.
type AuthStore struct {
	mu     sync.Mutex
	api    ports.AuthAPI
	tokens ports.TokenStore

	user          *models.User
	authenticated bool
	lastErr       string
}

func NewAuthStore(api ports.AuthAPI, tokens ports.TokenStore) *AuthStore {
	return &AuthStore{api: api, tokens: tokens}
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// User returns a copy of the cached user, or nil when logged out.
func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// LoginUser exchanges credentials for a token, persists it and caches
// the user fetched from /auth/me.
func (s *AuthStore) LoginUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	tok, err := s.api.Login(ctx, creds)
	if err != nil {
		s.setError(ErrMsgLoginFailed)
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	if err := s.tokens.Save(tok.AccessToken); err != nil {
		s.setError(ErrMsgLoginFailed)
		return models.User{}, fmt.Errorf("saving token: %w", err)
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.setError(ErrMsgLoginFailed)
		return models.User{}, fmt.Errorf("fetching user after login: %w", err)
	}

	s.setSession(&user)
	return user, nil
}

// RegisterUser creates the account then logs straight in with the same
// credentials.
func (s *AuthStore) RegisterUser(ctx context.Context, req models.UserCreate) (models.User, error) {
	if _, err := s.api.Register(ctx, req); err != nil {
		s.setError(ErrMsgRegisterFailed)
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return s.LoginUser(ctx, models.Credentials{Email: req.Email, Password: req.Password})
}

// LogoutUser drops the persisted token and the cached session.
func (s *AuthStore) LogoutUser() error {
	err := s.tokens.Clear()
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.lastErr = ""
	s.mu.Unlock()
	return err
}

func (s *AuthStore) UpdatePreferences(ctx context.Context, preferences map[string]any) (models.User, error) {
	user, err := s.api.UpdatePreferences(ctx, preferences)
	if err != nil {
		s.setError("Failed to update preferences. Please try again.")
		return models.User{}, fmt.Errorf("updating preferences: %w", err)
	}
	s.setSession(&user)
	return user, nil
}

// CheckAuth validates any stored token against /auth/me. No token means
// quietly unauthenticated; a rejected or expired token clears the
// session and surfaces a session-expired message.
func (s *AuthStore) CheckAuth(ctx context.Context) error {
	tok, err := s.tokens.Token()
	if err != nil {
		s.clearSession("")
		return nil
	}

	if token.Expired(tok) {
		s.tokens.Clear()
		s.clearSession(ErrMsgSessionExpired)
		return models.ErrTokenExpired
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.tokens.Clear()
		s.clearSession(ErrMsgSessionExpired)
		return fmt.Errorf("auth check: %w", err)
	}

	s.setSession(&user)
	return nil
}

func (s *AuthStore) setSession(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *AuthStore) clearSession(msg string) {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.lastErr = msg
	s.mu.Unlock()
}

func (s *AuthStore) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
