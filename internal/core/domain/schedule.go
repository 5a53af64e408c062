package domain

// ScheduleTimeLayout is the timestamp format the backend accepts for
// deferred sends: YYYY-MM-DDTHH:MM:00, seconds always zero.
const ScheduleTimeLayout = "2006-01-02T15:04:00"

// Schedule binds one campaign and one group to a future send time.
type Schedule struct {
	ID           int     `json:"id_agendamento"`
	DateTime     string  `json:"data_hora"`
	CampaignID   int     `json:"id_campanha"`
	GroupID      int     `json:"id_grupo"`
	Sent         bool    `json:"enviado"`
	TemplateID   *int    `json:"id_template,omitempty"`
	CampaignName *string `json:"campanha_nome,omitempty"`
	GroupName    *string `json:"grupo_nome,omitempty"`
}

// ScheduleCreate is the creation payload. DateTime must follow
// ScheduleTimeLayout.
type ScheduleCreate struct {
	CampaignID int    `json:"id_campanha"`
	GroupID    int    `json:"id_grupo"`
	DateTime   string `json:"data_hora"`
}

// ComposeScheduleTime joins the wizard's separate date ("2026-07-01") and
// time ("09:00") inputs into the wire timestamp "2026-07-01T09:00:00".
func ComposeScheduleTime(date, clock string) string {
	return date + "T" + clock + ":00"
}
