package rest

import (
	"context"
	"fmt"

	"simbu-console/internal/core/domain"
)

// Schedules implements port.ScheduleService. Creation uses the dedicated
// /sms/schedule route; everything else lives under /sms/agendamentos.
type Schedules struct {
	c *Client
}

func NewSchedules(c *Client) *Schedules {
	return &Schedules{c: c}
}

func (s *Schedules) List(ctx context.Context) ([]domain.Schedule, error) {
	var out []domain.Schedule
	if err := s.c.get(ctx, "/sms/agendamentos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Schedules) Get(ctx context.Context, id int) (*domain.Schedule, error) {
	var out domain.Schedule
	if err := s.c.get(ctx, fmt.Sprintf("/sms/agendamentos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Schedules) Create(ctx context.Context, in domain.ScheduleCreate) (*domain.Schedule, error) {
	var out domain.Schedule
	if err := s.c.post(ctx, "/sms/schedule", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Schedules) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/sms/agendamentos/%d", id))
}
