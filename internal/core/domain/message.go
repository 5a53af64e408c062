package domain

// Message status values as reported by the backend.
const (
	MessageStatusPending   = "pending"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
)

// Message is a read-only projection of one outbound SMS. The console never
// mutates messages; delivery tracking happens behind the API.
type Message struct {
	ID           int     `json:"id_mensagem"`
	CampaignID   *int    `json:"id_campanha,omitempty"`
	ContactID    *int    `json:"id_contacto,omitempty"`
	ScheduleID   *int    `json:"id_agendamento,omitempty"`
	Destination  string  `json:"numero_destino"`
	Body         string  `json:"mensagem"`
	Status       string  `json:"status"`
	ProviderID   *string `json:"message_id,omitempty"`
	Cost         *string `json:"custo,omitempty"`
	Error        *string `json:"erro,omitempty"`
	SentAt       *string `json:"data_envio,omitempty"`
	UpdatedAt    *string `json:"data_actualizacao,omitempty"`
	CampaignName *string `json:"campanha_nome,omitempty"`
	ContactName  *string `json:"contacto_nome,omitempty"`
}

// MessagePage is one page of messages.
type MessagePage struct {
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Items   []Message `json:"items"`
}

// MessageFilters narrows message listings. Zero-value fields are omitted
// from the query string; the backend applies its own defaults.
type MessageFilters struct {
	Skip       *int
	Limit      *int
	Status     string
	CampaignID *int
	ContactID  *int
	DateFrom   string
	DateTo     string
}
