package domain

// SMSConfig is the provider configuration section of the settings screen.
type SMSConfig struct {
	Provider      *string `json:"provider,omitempty"`
	APIUsername   *string `json:"api_username,omitempty"`
	APIKey        *string `json:"api_key,omitempty"`
	DailyLimit    *int    `json:"limite_diario,omitempty"`
	RatePerMinute *int    `json:"taxa_por_minuto,omitempty"`
}

// NotificationPrefs toggles outbound alerts, integer booleans on the wire.
type NotificationPrefs struct {
	CampaignNotifs *int `json:"notif_campanhas,omitempty"`
	WeeklyReports  *int `json:"relatorios_semanais,omitempty"`
	EmailAlerts    *int `json:"alertas_email,omitempty"`
	SMSAlerts      *int `json:"alertas_sms,omitempty"`
}

// AppearancePrefs holds theme and timezone.
type AppearancePrefs struct {
	Theme    *string `json:"tema,omitempty"`
	Timezone *string `json:"fuso_horario,omitempty"`
}
