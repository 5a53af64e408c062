package domain

// Campaign represents an SMS/Email campaign as the backend returns it.
// Channel activation flags are integer booleans on the wire.
type Campaign struct {
	ID          int     `json:"id_campanha"`
	Name        string  `json:"nome_campanha"`
	SMSText     string  `json:"sms_texto"`
	SMSActive   int     `json:"sms_ativo"`
	EmailActive int     `json:"email_ativo"`
	CreatedAt   *string `json:"data_criacao,omitempty"`
	TemplateID  *int    `json:"id_template,omitempty"`
}

// CampaignCreate is the wizard's creation payload. Recipients are resolved
// server-side from the target group at send time, so To stays empty when
// the campaign is addressed to a group.
type CampaignCreate struct {
	Name       string   `json:"nome"`
	Text       string   `json:"texto"`
	To         []string `json:"to"`
	TemplateID *int     `json:"id_template,omitempty"`
	SendNow    bool     `json:"send_now"`
}

// CampaignUpdate mutates only the message text of an existing campaign.
type CampaignUpdate struct {
	SMSText string `json:"sms_texto"`
}

// CampaignPreview shows rendered messages for a campaign/group pair.
type CampaignPreview struct {
	TotalContacts int              `json:"total_contactos"`
	Messages      []PreviewMessage `json:"mensagens"`
}

// PreviewMessage is one rendered line of a preview.
type PreviewMessage struct {
	Contact string `json:"contacto"`
	Message string `json:"mensagem"`
}
