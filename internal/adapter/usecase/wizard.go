package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"simbu-console/internal/core/domain"
	"simbu-console/internal/core/port"
)

// WizardStep enumerates the four screens of the campaign creation flow.
// Steps are strictly linear; Back may revisit any earlier step without
// losing entered data.
type WizardStep int

const (
	StepType WizardStep = iota
	StepDetails
	StepRecipients
	StepSend
)

// CampaignSource selects between a blank campaign and one copied from an
// existing campaign.
type CampaignSource string

const (
	SourceNew   CampaignSource = "new"
	SourceReuse CampaignSource = "reuse"
)

// SendMode is the terminal choice of the wizard.
type SendMode string

const (
	SendDraft    SendMode = "draft"
	SendNow      SendMode = "now"
	SendSchedule SendMode = "schedule"
)

var (
	// ErrIncompleteStep is returned when the active step's required fields
	// are missing. Validation errors never reach the network.
	ErrIncompleteStep = errors.New("current step is incomplete")
	// ErrNotAtSendStep is returned by Submit outside the final step.
	ErrNotAtSendStep = errors.New("submit is only allowed on the send step")
	// ErrSubmitInFlight blocks duplicate submissions while one is running.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// Wizard is the campaign creation state machine. Transitions are
// synchronous and side-effect free; the only I/O happens in Submit, on the
// terminal step. A failed submission leaves the wizard open with all
// entered data intact so the final step can be retried.
type Wizard struct {
	campaigns port.CampaignService
	schedules port.ScheduleService
	logger    *slog.Logger

	open    bool
	step    WizardStep
	loading bool
	onSaved func()

	// StepType
	source           CampaignSource
	reusedCampaignID int

	// StepDetails
	name       string
	smsText    string
	templateID *int

	// StepRecipients
	groupID int

	// StepSend
	mode         SendMode
	scheduleDate string
	scheduleTime string
}

// NewWizard wires the wizard to the two services its submission needs.
func NewWizard(campaigns port.CampaignService, schedules port.ScheduleService, logger *slog.Logger) *Wizard {
	return &Wizard{campaigns: campaigns, schedules: schedules, logger: logger}
}

// Open resets every field and places the wizard on the first step. onSaved
// runs after a successful submission, before the wizard closes; it may be
// nil.
func (w *Wizard) Open(onSaved func()) {
	*w = Wizard{
		campaigns: w.campaigns,
		schedules: w.schedules,
		logger:    w.logger,
		open:      true,
		step:      StepType,
		source:    SourceNew,
		mode:      SendNow,
		onSaved:   onSaved,
	}
}

// Close abandons the flow without submitting.
func (w *Wizard) Close() { w.open = false }

// IsOpen reports whether a wizard run is active.
func (w *Wizard) IsOpen() bool { return w.open }

// Step returns the active step.
func (w *Wizard) Step() WizardStep { return w.step }

// IsLoading reports whether a submission is in flight.
func (w *Wizard) IsLoading() bool { return w.loading }

// SelectSource picks between a blank campaign and reuse. Switching to
// SourceNew drops any previous campaign selection.
func (w *Wizard) SelectSource(src CampaignSource) {
	w.source = src
	if src == SourceNew {
		w.reusedCampaignID = 0
	}
}

// SelectExistingCampaign marks c as the reuse source and copies its name,
// text and template id into the details step. The last selection wins.
func (w *Wizard) SelectExistingCampaign(c domain.Campaign) {
	w.source = SourceReuse
	w.reusedCampaignID = c.ID
	w.name = c.Name
	w.smsText = c.SMSText
	w.templateID = c.TemplateID
}

// SetName sets the campaign name.
func (w *Wizard) SetName(name string) { w.name = name }

// SetText sets the SMS body. Editing the body never touches a previously
// selected template record.
func (w *Wizard) SetText(text string) { w.smsText = text }

// SelectTemplate applies a template: the template id is recorded and the
// body is overwritten with the template's content, last write wins.
func (w *Wizard) SelectTemplate(t domain.Template) {
	id := t.ID
	w.templateID = &id
	if t.Body != nil {
		w.smsText = *t.Body
	} else {
		w.smsText = ""
	}
}

// ClearTemplate detaches the template without altering the body.
func (w *Wizard) ClearTemplate() { w.templateID = nil }

// SelectGroup picks the single target group.
func (w *Wizard) SelectGroup(groupID int) { w.groupID = groupID }

// SetSendMode picks draft, now or schedule.
func (w *Wizard) SetSendMode(mode SendMode) { w.mode = mode }

// SetScheduleDate sets the date part, "YYYY-MM-DD".
func (w *Wizard) SetScheduleDate(date string) { w.scheduleDate = date }

// SetScheduleTime sets the time part, "HH:MM".
func (w *Wizard) SetScheduleTime(clock string) { w.scheduleTime = clock }

// Name returns the entered campaign name.
func (w *Wizard) Name() string { return w.name }

// Text returns the current SMS body.
func (w *Wizard) Text() string { return w.smsText }

// CanProceed reports whether the active step's gate is satisfied.
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepType:
		return w.source == SourceNew || w.reusedCampaignID != 0
	case StepDetails:
		return strings.TrimSpace(w.name) != "" && strings.TrimSpace(w.smsText) != ""
	case StepRecipients:
		return w.groupID != 0
	case StepSend:
		if w.mode == SendSchedule {
			return w.scheduleDate != "" && w.scheduleTime != ""
		}
		return w.mode == SendDraft || w.mode == SendNow
	default:
		return false
	}
}

// Next advances to the following step. It refuses to move past an
// unsatisfied gate and does not advance beyond the send step; submission
// is a separate, explicit action.
func (w *Wizard) Next() error {
	if !w.CanProceed() {
		return ErrIncompleteStep
	}
	if w.step < StepSend {
		w.step++
	}
	return nil
}

// Back returns to the previous step, keeping all entered data.
func (w *Wizard) Back() {
	if w.step > StepType {
		w.step--
	}
}

// Submit performs the terminal action. Call order is fixed: the campaign
// is created first, then exactly one of nothing (draft), send-to-group
// (now) or schedule creation follows. A failure after the creation call is
// not compensated; the campaign already exists server-side and the caller
// must retry manually.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepSend {
		return ErrNotAtSendStep
	}
	if w.loading {
		return ErrSubmitInFlight
	}
	if !w.CanProceed() {
		return ErrIncompleteStep
	}

	w.loading = true
	defer func() { w.loading = false }()

	created, err := w.campaigns.Create(ctx, domain.CampaignCreate{
		Name:       strings.TrimSpace(w.name),
		Text:       strings.TrimSpace(w.smsText),
		To:         []string{},
		TemplateID: w.templateID,
		SendNow:    w.mode == SendNow,
	})
	if err != nil {
		return err
	}

	switch w.mode {
	case SendNow:
		if err := w.campaigns.SendToGroup(ctx, created.ID, w.groupID); err != nil {
			w.logf("send after create failed", created.ID, err)
			return err
		}
	case SendSchedule:
		_, err := w.schedules.Create(ctx, domain.ScheduleCreate{
			CampaignID: created.ID,
			GroupID:    w.groupID,
			DateTime:   domain.ComposeScheduleTime(w.scheduleDate, w.scheduleTime),
		})
		if err != nil {
			w.logf("schedule after create failed", created.ID, err)
			return err
		}
	}

	if w.onSaved != nil {
		w.onSaved()
	}
	w.open = false
	return nil
}

func (w *Wizard) logf(msg string, campaignID int, err error) {
	if w.logger != nil {
		w.logger.Error(msg, slog.Int("campaign_id", campaignID), slog.Any("error", err))
	}
}

// FilterCampaigns narrows the reuse list by a case-insensitive name match.
// An empty query returns the input unchanged.
func FilterCampaigns(campaigns []domain.Campaign, query string) []domain.Campaign {
	if query == "" {
		return campaigns
	}
	q := strings.ToLower(query)
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}
