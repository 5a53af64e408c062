package rest

import (
	"context"

	"simbu-console/internal/core/domain"
)

// Settings implements port.SettingsService.
type Settings struct {
	c *Client
}

func NewSettings(c *Client) *Settings {
	return &Settings{c: c}
}

func (s *Settings) SMSConfig(ctx context.Context) (*domain.SMSConfig, error) {
	var out domain.SMSConfig
	if err := s.c.get(ctx, "/settings/sms-config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Settings) UpdateSMSConfig(ctx context.Context, in domain.SMSConfig) (*domain.SMSConfig, error) {
	var out domain.SMSConfig
	if err := s.c.put(ctx, "/settings/sms-config", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Settings) Notifications(ctx context.Context) (*domain.NotificationPrefs, error) {
	var out domain.NotificationPrefs
	if err := s.c.get(ctx, "/settings/notificacoes", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Settings) UpdateNotifications(ctx context.Context, in domain.NotificationPrefs) (*domain.NotificationPrefs, error) {
	var out domain.NotificationPrefs
	if err := s.c.put(ctx, "/settings/notificacoes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Settings) Appearance(ctx context.Context) (*domain.AppearancePrefs, error) {
	var out domain.AppearancePrefs
	if err := s.c.get(ctx, "/settings/aparencia", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Settings) UpdateAppearance(ctx context.Context, in domain.AppearancePrefs) (*domain.AppearancePrefs, error) {
	var out domain.AppearancePrefs
	if err := s.c.put(ctx, "/settings/aparencia", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardClient implements port.DashboardService.
type DashboardClient struct {
	c *Client
}

func NewDashboard(c *Client) *DashboardClient {
	return &DashboardClient{c: c}
}

func (s *DashboardClient) Metrics(ctx context.Context) (*domain.Dashboard, error) {
	var out domain.Dashboard
	if err := s.c.get(ctx, "/sms/dashboard-metrics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
