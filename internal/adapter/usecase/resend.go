package usecase

import (
	"context"
	"log/slog"

	"simbu-console/internal/core/domain"
	"simbu-console/internal/core/port"
)

// Resend re-dispatches an existing campaign to a group, immediately or at
// a scheduled time. There is no creation step; otherwise it shares the
// wizard's send primitives and its no-rollback rule.
type Resend struct {
	campaigns port.CampaignService
	schedules port.ScheduleService
	logger    *slog.Logger

	open       bool
	loading    bool
	campaignID int
	onSaved    func()

	groupID      int
	mode         SendMode
	scheduleDate string
	scheduleTime string
}

// NewResend wires the flow to its services.
func NewResend(campaigns port.CampaignService, schedules port.ScheduleService, logger *slog.Logger) *Resend {
	return &Resend{campaigns: campaigns, schedules: schedules, logger: logger}
}

// Open starts a run against the given campaign, resetting prior input.
// Draft is not an option here; the mode starts as SendNow.
func (r *Resend) Open(campaignID int, onSaved func()) {
	*r = Resend{
		campaigns:  r.campaigns,
		schedules:  r.schedules,
		logger:     r.logger,
		open:       true,
		campaignID: campaignID,
		mode:       SendNow,
		onSaved:    onSaved,
	}
}

// Close abandons the flow.
func (r *Resend) Close() { r.open = false }

// IsOpen reports whether a run is active.
func (r *Resend) IsOpen() bool { return r.open }

// IsLoading reports whether a submission is in flight.
func (r *Resend) IsLoading() bool { return r.loading }

// SelectGroup picks the target group.
func (r *Resend) SelectGroup(groupID int) { r.groupID = groupID }

// SetSendMode picks now or schedule. Draft is rejected silently by
// CanSubmit.
func (r *Resend) SetSendMode(mode SendMode) { r.mode = mode }

// SetScheduleDate sets the date part, "YYYY-MM-DD".
func (r *Resend) SetScheduleDate(date string) { r.scheduleDate = date }

// SetScheduleTime sets the time part, "HH:MM".
func (r *Resend) SetScheduleTime(clock string) { r.scheduleTime = clock }

// CanSubmit mirrors the wizard's recipient and send gates: a group is
// required, and schedule mode additionally needs date and time.
func (r *Resend) CanSubmit() bool {
	if r.groupID == 0 {
		return false
	}
	if r.mode == SendSchedule {
		return r.scheduleDate != "" && r.scheduleTime != ""
	}
	return r.mode == SendNow
}

// Submit issues the single resend or schedule call. On failure the flow
// stays open with loading cleared for a manual retry.
func (r *Resend) Submit(ctx context.Context) error {
	if r.loading {
		return ErrSubmitInFlight
	}
	if !r.CanSubmit() {
		return ErrIncompleteStep
	}

	r.loading = true
	defer func() { r.loading = false }()

	var err error
	if r.mode == SendNow {
		err = r.campaigns.Resend(ctx, r.campaignID, r.groupID)
	} else {
		_, err = r.schedules.Create(ctx, domain.ScheduleCreate{
			CampaignID: r.campaignID,
			GroupID:    r.groupID,
			DateTime:   domain.ComposeScheduleTime(r.scheduleDate, r.scheduleTime),
		})
	}
	if err != nil {
		if r.logger != nil {
			r.logger.Error("resend failed", slog.Int("campaign_id", r.campaignID), slog.Any("error", err))
		}
		return err
	}

	if r.onSaved != nil {
		r.onSaved()
	}
	r.open = false
	return nil
}
