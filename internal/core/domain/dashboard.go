package domain

import "encoding/json"

// KPIPair holds a metric for the current and the previous period.
type KPIPair struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// TodayIndicators are the headline numbers of the dashboard screen.
type TodayIndicators struct {
	ActiveSMSCampaigns  int     `json:"active_sms_campaigns"`
	SMSSentToday        int     `json:"sms_sent_today"`
	EmailSentToday      int     `json:"email_sent_today"`
	OverallDeliveryRate float64 `json:"overall_delivery_rate"`
}

// LifetimeTotals aggregates delivery outcomes since account creation.
type LifetimeTotals struct {
	TotalDelivered          int     `json:"total_delivered"`
	TotalFailed             int     `json:"total_failed"`
	TotalPending            int     `json:"total_pending"`
	TotalScheduledCampaigns int     `json:"total_scheduled_campaigns"`
	SuccessRate             float64 `json:"success_rate"`
}

// DashboardKPIs groups the period-over-period metrics.
type DashboardKPIs struct {
	Campaigns       KPIPair        `json:"campaigns"`
	SMSSent         KPIPair        `json:"sms_sent"`
	DeliveryRatePct KPIPair        `json:"delivery_rate_pct"`
	ActiveContacts  KPIPair        `json:"active_contacts"`
	Lifetime        LifetimeTotals `json:"lifetime"`
}

// EntityTotals counts the account's stored entities.
type EntityTotals struct {
	Contacts         int `json:"contactos"`
	Groups           int `json:"grupos"`
	Templates        int `json:"templates"`
	Campaigns        int `json:"campanhas"`
	SchedulesPending int `json:"agendamentos_pendentes"`
	SchedulesSent    int `json:"agendamentos_enviados"`
}

// RecentSchedule is one row of the dashboard's upcoming-sends list.
type RecentSchedule struct {
	Campaign string `json:"campanha"`
	DateTime string `json:"data_hora"`
	Sent     bool   `json:"enviado"`
}

// Dashboard is the aggregated metrics document served by
// GET /sms/dashboard-metrics. Chart and log entries have no fixed shape
// and are kept raw.
type Dashboard struct {
	Today           TodayIndicators   `json:"today_indicators"`
	KPIs            DashboardKPIs     `json:"kpis"`
	Totals          EntityTotals      `json:"totals"`
	Chart           []json.RawMessage `json:"chart"`
	RecentSchedules []RecentSchedule  `json:"recent_schedules"`
	RecentLogs      []json.RawMessage `json:"recent_logs"`
}
