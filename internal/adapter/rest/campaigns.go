package rest

import (
	"context"
	"fmt"

	"simbu-console/internal/core/domain"
)

// Campaigns implements port.CampaignService.
type Campaigns struct {
	c *Client
}

func NewCampaigns(c *Client) *Campaigns {
	return &Campaigns{c: c}
}

func (s *Campaigns) List(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := s.c.get(ctx, "/sms/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Campaigns) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := s.c.get(ctx, fmt.Sprintf("/sms/campaigns/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Campaigns) Create(ctx context.Context, in domain.CampaignCreate) (*domain.Campaign, error) {
	if in.To == nil {
		in.To = []string{}
	}
	var out domain.Campaign
	if err := s.c.post(ctx, "/sms/campaigns", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Campaigns) Update(ctx context.Context, id int, in domain.CampaignUpdate) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := s.c.put(ctx, fmt.Sprintf("/sms/campaigns/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Campaigns) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/sms/campaigns/%d", id))
}

// SendToGroup dispatches an already-created campaign to every contact of
// the group. Recipient resolution happens server-side.
func (s *Campaigns) SendToGroup(ctx context.Context, campaignID, groupID int) error {
	return s.c.post(ctx, fmt.Sprintf("/sms/send-group/%d/campaign/%d", groupID, campaignID), nil, nil, nil)
}

func (s *Campaigns) Resend(ctx context.Context, campaignID, groupID int) error {
	return s.c.post(ctx, fmt.Sprintf("/sms/campaigns/%d/resend/%d", campaignID, groupID), nil, nil, nil)
}

func (s *Campaigns) Preview(ctx context.Context, campaignID, groupID int) (*domain.CampaignPreview, error) {
	var out domain.CampaignPreview
	if err := s.c.get(ctx, fmt.Sprintf("/sms/campaigns/%d/preview/%d", campaignID, groupID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
