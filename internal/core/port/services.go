package port

import (
	"context"

	"simbu-console/internal/core/domain"
)

// AuthService covers the session endpoints under /auth plus account
// registration. Logout is best effort: the local session is discarded even
// when the call fails.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.TokenResponse, error)
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, chg domain.PasswordChange) error
	Register(ctx context.Context, in domain.UserCreate) (*domain.User, error)
	Logout(ctx context.Context) error
}

// AdminService manages accounts and permission groups.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error)
	DeactivateUser(ctx context.Context, id int) error
	ListPermissions(ctx context.Context) ([]domain.Permission, error)
	CreatePermission(ctx context.Context, name string) (*domain.Permission, error)
}

// CampaignService is the façade over /sms/campaigns. SendToGroup and
// Resend dispatch an existing campaign to every contact of a group;
// Preview renders the first messages without sending.
type CampaignService interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, error)
	Create(ctx context.Context, in domain.CampaignCreate) (*domain.Campaign, error)
	Update(ctx context.Context, id int, in domain.CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, id int) error
	SendToGroup(ctx context.Context, campaignID, groupID int) error
	Resend(ctx context.Context, campaignID, groupID int) error
	Preview(ctx context.Context, campaignID, groupID int) (*domain.CampaignPreview, error)
}

// ContactService is the façade over /management/contactos.
type ContactService interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id int) (*domain.Contact, error)
	Create(ctx context.Context, in domain.ContactCreate) (*domain.Contact, error)
	Update(ctx context.Context, id int, in domain.ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, id int) error
}

// GroupService is the façade over /management/grupos and the contact link
// endpoints.
type GroupService interface {
	List(ctx context.Context) ([]domain.Group, error)
	Get(ctx context.Context, id int) (*domain.Group, error)
	Create(ctx context.Context, in domain.GroupCreate) (*domain.Group, error)
	Update(ctx context.Context, id int, in domain.GroupUpdate) (*domain.Group, error)
	Delete(ctx context.Context, id int) error
	Contacts(ctx context.Context, groupID int) ([]domain.Contact, error)
	LinkContact(ctx context.Context, groupID, contactID int) error
	LinkContacts(ctx context.Context, groupID int, contactIDs []int) error
	UnlinkContact(ctx context.Context, groupID, contactID int) error
}

// TemplateService is the façade over /sms/templates.
type TemplateService interface {
	List(ctx context.Context) ([]domain.Template, error)
	Get(ctx context.Context, id int) (*domain.Template, error)
	Create(ctx context.Context, in domain.TemplateCreate) (*domain.Template, error)
	Update(ctx context.Context, id int, in domain.TemplateUpdate) (*domain.Template, error)
	Delete(ctx context.Context, id int) error
}

// TemplateCategoryService is the façade over /sms/template-categorias.
type TemplateCategoryService interface {
	List(ctx context.Context) ([]domain.TemplateCategory, error)
	Create(ctx context.Context, in domain.TemplateCategoryPayload) (*domain.TemplateCategory, error)
	Update(ctx context.Context, id int, in domain.TemplateCategoryPayload) (*domain.TemplateCategory, error)
	Delete(ctx context.Context, id int) error
}

// MessageService lists outbound messages. All listings are paginated and
// accept the same filter set.
type MessageService interface {
	List(ctx context.Context, f domain.MessageFilters) (*domain.MessagePage, error)
	Get(ctx context.Context, id int) (*domain.Message, error)
	ListByCampaign(ctx context.Context, campaignID int, f domain.MessageFilters) (*domain.MessagePage, error)
	ListByContact(ctx context.Context, contactID int, f domain.MessageFilters) (*domain.MessagePage, error)
}

// ScheduleService manages deferred sends. Creation goes through
// /sms/schedule; listing and deletion through /sms/agendamentos.
type ScheduleService interface {
	List(ctx context.Context) ([]domain.Schedule, error)
	Get(ctx context.Context, id int) (*domain.Schedule, error)
	Create(ctx context.Context, in domain.ScheduleCreate) (*domain.Schedule, error)
	Delete(ctx context.Context, id int) error
}

// SettingsService reads and writes the three settings sections.
type SettingsService interface {
	SMSConfig(ctx context.Context) (*domain.SMSConfig, error)
	UpdateSMSConfig(ctx context.Context, in domain.SMSConfig) (*domain.SMSConfig, error)
	Notifications(ctx context.Context) (*domain.NotificationPrefs, error)
	UpdateNotifications(ctx context.Context, in domain.NotificationPrefs) (*domain.NotificationPrefs, error)
	Appearance(ctx context.Context) (*domain.AppearancePrefs, error)
	UpdateAppearance(ctx context.Context, in domain.AppearancePrefs) (*domain.AppearancePrefs, error)
}

// DashboardService fetches the aggregated metrics document.
type DashboardService interface {
	Metrics(ctx context.Context) (*domain.Dashboard, error)
}
