package rest

import (
	"context"
	"fmt"

	"simbu-console/internal/core/domain"
)

// Templates implements port.TemplateService.
type Templates struct {
	c *Client
}

func NewTemplates(c *Client) *Templates {
	return &Templates{c: c}
}

func (s *Templates) List(ctx context.Context) ([]domain.Template, error) {
	var out []domain.Template
	if err := s.c.get(ctx, "/sms/templates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Templates) Get(ctx context.Context, id int) (*domain.Template, error) {
	var out domain.Template
	if err := s.c.get(ctx, fmt.Sprintf("/sms/templates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Templates) Create(ctx context.Context, in domain.TemplateCreate) (*domain.Template, error) {
	var out domain.Template
	if err := s.c.post(ctx, "/sms/templates", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Templates) Update(ctx context.Context, id int, in domain.TemplateUpdate) (*domain.Template, error) {
	var out domain.Template
	if err := s.c.put(ctx, fmt.Sprintf("/sms/templates/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Templates) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/sms/templates/%d", id))
}

// TemplateCategories implements port.TemplateCategoryService.
type TemplateCategories struct {
	c *Client
}

func NewTemplateCategories(c *Client) *TemplateCategories {
	return &TemplateCategories{c: c}
}

func (s *TemplateCategories) List(ctx context.Context) ([]domain.TemplateCategory, error) {
	var out []domain.TemplateCategory
	if err := s.c.get(ctx, "/sms/template-categorias", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TemplateCategories) Create(ctx context.Context, in domain.TemplateCategoryPayload) (*domain.TemplateCategory, error) {
	var out domain.TemplateCategory
	if err := s.c.post(ctx, "/sms/template-categorias", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TemplateCategories) Update(ctx context.Context, id int, in domain.TemplateCategoryPayload) (*domain.TemplateCategory, error) {
	var out domain.TemplateCategory
	if err := s.c.put(ctx, fmt.Sprintf("/sms/template-categorias/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TemplateCategories) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/sms/template-categorias/%d", id))
}
