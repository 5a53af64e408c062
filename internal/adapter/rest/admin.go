package rest

import (
	"context"
	"fmt"
	"net/url"

	"simbu-console/internal/core/domain"
)

// Admin implements port.AdminService.
type Admin struct {
	c *Client
}

func NewAdmin(c *Client) *Admin {
	return &Admin{c: c}
}

func (s *Admin) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := s.c.get(ctx, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Admin) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	var out domain.User
	if err := s.c.post(ctx, "/admin/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateUser disables an account; the backend keeps the record.
func (s *Admin) DeactivateUser(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}

func (s *Admin) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	var out []domain.Permission
	if err := s.c.get(ctx, "/admin/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePermission passes the group name as a query parameter; the
// endpoint takes no body.
func (s *Admin) CreatePermission(ctx context.Context, name string) (*domain.Permission, error) {
	q := url.Values{"nome_grupo": {name}}
	var out domain.Permission
	if err := s.c.post(ctx, "/admin/permissions", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
