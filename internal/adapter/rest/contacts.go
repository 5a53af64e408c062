package rest

import (
	"context"
	"fmt"

	"simbu-console/internal/core/domain"
)

// Contacts implements port.ContactService.
type Contacts struct {
	c *Client
}

func NewContacts(c *Client) *Contacts {
	return &Contacts{c: c}
}

func (s *Contacts) List(ctx context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := s.c.get(ctx, "/management/contactos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Contacts) Get(ctx context.Context, id int) (*domain.Contact, error) {
	var out domain.Contact
	if err := s.c.get(ctx, fmt.Sprintf("/management/contactos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Create(ctx context.Context, in domain.ContactCreate) (*domain.Contact, error) {
	var out domain.Contact
	if err := s.c.post(ctx, "/management/contactos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Update(ctx context.Context, id int, in domain.ContactUpdate) (*domain.Contact, error) {
	var out domain.Contact
	if err := s.c.put(ctx, fmt.Sprintf("/management/contactos/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/management/contactos/%d", id))
}
