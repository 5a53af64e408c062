package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"simbu-console/internal/core/domain"
)

// Messages implements port.MessageService. Messages are read-only; all
// listings pass the filter set through as query parameters untouched.
type Messages struct {
	c *Client
}

func NewMessages(c *Client) *Messages {
	return &Messages{c: c}
}

// filterQuery maps MessageFilters to the backend's query parameters,
// omitting unset fields.
func filterQuery(f domain.MessageFilters) url.Values {
	q := url.Values{}
	if f.Skip != nil {
		q.Set("skip", strconv.Itoa(*f.Skip))
	}
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CampaignID != nil {
		q.Set("id_campanha", strconv.Itoa(*f.CampaignID))
	}
	if f.ContactID != nil {
		q.Set("id_contacto", strconv.Itoa(*f.ContactID))
	}
	if f.DateFrom != "" {
		q.Set("data_inicio", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("data_fim", f.DateTo)
	}
	return q
}

func (s *Messages) List(ctx context.Context, f domain.MessageFilters) (*domain.MessagePage, error) {
	var out domain.MessagePage
	if err := s.c.get(ctx, "/sms/mensagens", filterQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Messages) Get(ctx context.Context, id int) (*domain.Message, error) {
	var out domain.Message
	if err := s.c.get(ctx, fmt.Sprintf("/sms/mensagens/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Messages) ListByCampaign(ctx context.Context, campaignID int, f domain.MessageFilters) (*domain.MessagePage, error) {
	var out domain.MessagePage
	if err := s.c.get(ctx, fmt.Sprintf("/sms/campaigns/%d/mensagens", campaignID), filterQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Messages) ListByContact(ctx context.Context, contactID int, f domain.MessageFilters) (*domain.MessagePage, error) {
	var out domain.MessagePage
	if err := s.c.get(ctx, fmt.Sprintf("/sms/contactos/%d/mensagens", contactID), filterQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
