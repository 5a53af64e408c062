package rest

import (
	"context"

	"simbu-console/internal/core/domain"
)

// Auth implements port.AuthService.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

func (s *Auth) Login(ctx context.Context, creds domain.Credentials) (*domain.TokenResponse, error) {
	var out domain.TokenResponse
	if err := s.c.post(ctx, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Auth) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := s.c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Auth) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (*domain.User, error) {
	var out domain.User
	if err := s.c.put(ctx, "/auth/me", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Auth) ChangePassword(ctx context.Context, chg domain.PasswordChange) error {
	return s.c.put(ctx, "/auth/change-password", chg, nil)
}

// Register creates a self-service account through the admin users endpoint.
// Accounts default to permission group 1 when none is given.
func (s *Auth) Register(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	if in.PermissionID == 0 {
		in.PermissionID = 1
	}
	var out domain.User
	if err := s.c.post(ctx, "/admin/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend to drop the session. Best effort: the local
// session is cleared by the caller regardless of the outcome.
func (s *Auth) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", nil, nil, nil)
}
