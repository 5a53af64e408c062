package rest

import (
	"context"
	"fmt"

	"simbu-console/internal/core/domain"
)

// Groups implements port.GroupService. The link endpoints address the
// contact first and the group second, mirroring the backend's routes.
type Groups struct {
	c *Client
}

func NewGroups(c *Client) *Groups {
	return &Groups{c: c}
}

func (s *Groups) List(ctx context.Context) ([]domain.Group, error) {
	var out []domain.Group
	if err := s.c.get(ctx, "/management/grupos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Groups) Get(ctx context.Context, id int) (*domain.Group, error) {
	var out domain.Group
	if err := s.c.get(ctx, fmt.Sprintf("/management/grupos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Groups) Create(ctx context.Context, in domain.GroupCreate) (*domain.Group, error) {
	var out domain.Group
	if err := s.c.post(ctx, "/management/grupos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Groups) Update(ctx context.Context, id int, in domain.GroupUpdate) (*domain.Group, error) {
	var out domain.Group
	if err := s.c.put(ctx, fmt.Sprintf("/management/grupos/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Groups) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/management/grupos/%d", id))
}

func (s *Groups) Contacts(ctx context.Context, groupID int) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := s.c.get(ctx, fmt.Sprintf("/management/grupos/%d/contactos", groupID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Groups) LinkContact(ctx context.Context, groupID, contactID int) error {
	return s.c.post(ctx, fmt.Sprintf("/management/link/%d/%d", contactID, groupID), nil, nil, nil)
}

func (s *Groups) LinkContacts(ctx context.Context, groupID int, contactIDs []int) error {
	body := domain.LinkContacts{ContactIDs: contactIDs}
	return s.c.post(ctx, fmt.Sprintf("/management/link-multiple/%d", groupID), nil, body, nil)
}

func (s *Groups) UnlinkContact(ctx context.Context, groupID, contactID int) error {
	return s.c.delete(ctx, fmt.Sprintf("/management/unlink/%d/%d", contactID, groupID))
}
