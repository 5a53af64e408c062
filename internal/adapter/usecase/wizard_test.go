package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbu-console/internal/core/domain"
)

// fakeBackend records every mutating call across both services so tests
// can assert call counts and ordering.
type fakeBackend struct {
	calls []string

	nextCampaignID int
	created        []domain.CampaignCreate
	sends          [][2]int // campaignID, groupID
	resends        [][2]int
	schedules      []domain.ScheduleCreate

	createErr   error
	sendErr     error
	resendErr   error
	scheduleErr error
}

type fakeCampaigns struct{ b *fakeBackend }

func (f *fakeCampaigns) List(ctx context.Context) ([]domain.Campaign, error) { return nil, nil }
func (f *fakeCampaigns) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	return nil, nil
}
func (f *fakeCampaigns) Create(ctx context.Context, in domain.CampaignCreate) (*domain.Campaign, error) {
	if f.b.createErr != nil {
		return nil, f.b.createErr
	}
	f.b.calls = append(f.b.calls, "create")
	f.b.created = append(f.b.created, in)
	f.b.nextCampaignID++
	return &domain.Campaign{ID: f.b.nextCampaignID, Name: in.Name, SMSText: in.Text}, nil
}
func (f *fakeCampaigns) Update(ctx context.Context, id int, in domain.CampaignUpdate) (*domain.Campaign, error) {
	return nil, nil
}
func (f *fakeCampaigns) Delete(ctx context.Context, id int) error {
	f.b.calls = append(f.b.calls, "delete")
	return nil
}
func (f *fakeCampaigns) SendToGroup(ctx context.Context, campaignID, groupID int) error {
	if f.b.sendErr != nil {
		return f.b.sendErr
	}
	f.b.calls = append(f.b.calls, "send")
	f.b.sends = append(f.b.sends, [2]int{campaignID, groupID})
	return nil
}
func (f *fakeCampaigns) Resend(ctx context.Context, campaignID, groupID int) error {
	if f.b.resendErr != nil {
		return f.b.resendErr
	}
	f.b.calls = append(f.b.calls, "resend")
	f.b.resends = append(f.b.resends, [2]int{campaignID, groupID})
	return nil
}
func (f *fakeCampaigns) Preview(ctx context.Context, campaignID, groupID int) (*domain.CampaignPreview, error) {
	return &domain.CampaignPreview{}, nil
}

type fakeSchedules struct{ b *fakeBackend }

func (f *fakeSchedules) List(ctx context.Context) ([]domain.Schedule, error)       { return nil, nil }
func (f *fakeSchedules) Get(ctx context.Context, id int) (*domain.Schedule, error) { return nil, nil }
func (f *fakeSchedules) Create(ctx context.Context, in domain.ScheduleCreate) (*domain.Schedule, error) {
	if f.b.scheduleErr != nil {
		return nil, f.b.scheduleErr
	}
	f.b.calls = append(f.b.calls, "schedule")
	f.b.schedules = append(f.b.schedules, in)
	return &domain.Schedule{ID: 1, CampaignID: in.CampaignID, GroupID: in.GroupID, DateTime: in.DateTime}, nil
}
func (f *fakeSchedules) Delete(ctx context.Context, id int) error { return nil }

func newTestWizard(b *fakeBackend) *Wizard {
	return NewWizard(&fakeCampaigns{b: b}, &fakeSchedules{b: b}, nil)
}

// advance fills the first three steps with valid data and moves to the
// send step.
func advance(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.Next())
	w.SetName("Campanha Teste")
	w.SetText("Olá mundo")
	require.NoError(t, w.Next())
	w.SelectGroup(7)
	require.NoError(t, w.Next())
	require.Equal(t, StepSend, w.Step())
}

func TestWizardDraftCreatesOnly(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)
	advance(t, w)

	w.SetSendMode(SendDraft)
	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, []string{"create"}, b.calls)
	assert.False(t, w.IsOpen())
	require.Len(t, b.created, 1)
	assert.False(t, b.created[0].SendNow)
	assert.Equal(t, []string{}, b.created[0].To)
}

func TestWizardSendNowOrder(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)
	advance(t, w)

	w.SetSendMode(SendNow)
	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, []string{"create", "send"}, b.calls)
	require.Len(t, b.sends, 1)
	assert.Equal(t, [2]int{1, 7}, b.sends[0])
	require.Len(t, b.created, 1)
	assert.True(t, b.created[0].SendNow)
}

func TestWizardScheduleScenario(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)

	saved := false
	w.Open(func() { saved = true })

	require.NoError(t, w.Next())
	w.SetName("Promo Julho")
	w.SetText("Olá {nome}, promoção válida até fim do mês")
	require.NoError(t, w.Next())
	w.SelectGroup(7)
	require.NoError(t, w.Next())

	w.SetSendMode(SendSchedule)
	w.SetScheduleDate("2026-07-01")
	w.SetScheduleTime("09:00")
	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, []string{"create", "schedule"}, b.calls)
	require.Len(t, b.schedules, 1)
	assert.Equal(t, "2026-07-01T09:00:00", b.schedules[0].DateTime)
	assert.Equal(t, 7, b.schedules[0].GroupID)
	assert.Equal(t, 1, b.schedules[0].CampaignID)
	assert.True(t, saved)
	assert.False(t, w.IsOpen())
}

func TestWizardGates(t *testing.T) {
	b := &fakeBackend{}

	t.Run("type requires selection for reuse", func(t *testing.T) {
		w := newTestWizard(b)
		w.Open(nil)
		assert.True(t, w.CanProceed(), "new is always passable")

		w.SelectSource(SourceReuse)
		assert.False(t, w.CanProceed())
		assert.ErrorIs(t, w.Next(), ErrIncompleteStep)

		w.SelectExistingCampaign(domain.Campaign{ID: 3, Name: "Antiga", SMSText: "txt"})
		assert.True(t, w.CanProceed())
	})

	t.Run("details requires non-blank name and body", func(t *testing.T) {
		w := newTestWizard(b)
		w.Open(nil)
		require.NoError(t, w.Next())

		assert.False(t, w.CanProceed())
		w.SetName("   ")
		w.SetText("corpo")
		assert.False(t, w.CanProceed(), "whitespace-only name must not pass")
		w.SetName("nome")
		w.SetText("  \t ")
		assert.False(t, w.CanProceed(), "whitespace-only body must not pass")
		w.SetText("corpo")
		assert.True(t, w.CanProceed())
	})

	t.Run("recipients requires a group", func(t *testing.T) {
		w := newTestWizard(b)
		w.Open(nil)
		require.NoError(t, w.Next())
		w.SetName("n")
		w.SetText("t")
		require.NoError(t, w.Next())

		assert.False(t, w.CanProceed())
		w.SelectGroup(2)
		assert.True(t, w.CanProceed())
	})

	t.Run("schedule requires date and time", func(t *testing.T) {
		w := newTestWizard(b)
		w.Open(nil)
		advance(t, w)

		w.SetSendMode(SendSchedule)
		assert.False(t, w.CanProceed())
		w.SetScheduleDate("2026-07-01")
		assert.False(t, w.CanProceed())
		w.SetScheduleTime("09:00")
		assert.True(t, w.CanProceed())

		w.SetSendMode(SendDraft)
		assert.True(t, w.CanProceed())
		w.SetSendMode(SendNow)
		assert.True(t, w.CanProceed())
	})
}

func TestWizardTemplateOverwritesBody(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)
	require.NoError(t, w.Next())

	body := "Texto do template"
	tpl := domain.Template{ID: 5, Name: "Boas-vindas", Body: &body}

	w.SetText("algo escrito à mão")
	w.SelectTemplate(tpl)
	assert.Equal(t, "Texto do template", w.Text())

	// Editing afterwards only changes the wizard's copy.
	w.SetText("Texto do template, editado")
	assert.Equal(t, "Texto do template", *tpl.Body)
	assert.Equal(t, "Texto do template, editado", w.Text())
}

func TestWizardReuseCopiesFields(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)

	tplID := 9
	w.SelectExistingCampaign(domain.Campaign{ID: 4, Name: "Natal", SMSText: "Boas festas", TemplateID: &tplID})
	require.NoError(t, w.Next())

	assert.Equal(t, "Natal", w.Name())
	assert.Equal(t, "Boas festas", w.Text())

	advanceRest(t, w)
	w.SetSendMode(SendDraft)
	require.NoError(t, w.Submit(context.Background()))
	require.Len(t, b.created, 1)
	require.NotNil(t, b.created[0].TemplateID)
	assert.Equal(t, 9, *b.created[0].TemplateID)
}

// advanceRest moves from the details step to the send step.
func advanceRest(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.Next())
	w.SelectGroup(1)
	require.NoError(t, w.Next())
}

func TestWizardBackKeepsData(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)
	advance(t, w)

	w.Back()
	w.Back()
	assert.Equal(t, StepDetails, w.Step())
	assert.Equal(t, "Campanha Teste", w.Name())
	assert.Equal(t, "Olá mundo", w.Text())

	require.NoError(t, w.Next())
	assert.True(t, w.CanProceed(), "group selection survives back-navigation")
}

func TestWizardSendFailureKeepsOpenNoRollback(t *testing.T) {
	b := &fakeBackend{sendErr: errors.New("boom")}
	w := newTestWizard(b)
	w.Open(nil)
	advance(t, w)

	w.SetSendMode(SendNow)
	err := w.Submit(context.Background())
	require.Error(t, err)

	// The campaign was created and stays created; no compensating delete.
	assert.Equal(t, []string{"create"}, b.calls)
	assert.True(t, w.IsOpen())
	assert.False(t, w.IsLoading(), "loading must clear so the step can be retried")

	// Retry succeeds without re-entering prior steps.
	b.sendErr = nil
	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, []string{"create", "create", "send"}, b.calls)
	assert.False(t, w.IsOpen())
}

func TestWizardSubmitOnlyAtSendStep(t *testing.T) {
	b := &fakeBackend{}
	w := newTestWizard(b)
	w.Open(nil)

	assert.ErrorIs(t, w.Submit(context.Background()), ErrNotAtSendStep)
	assert.Empty(t, b.calls)
}

func TestFilterCampaigns(t *testing.T) {
	list := []domain.Campaign{
		{ID: 1, Name: "Promo Julho"},
		{ID: 2, Name: "Natal 2026"},
		{ID: 3, Name: "promoção VIP"},
	}

	assert.Len(t, FilterCampaigns(list, ""), 3)
	got := FilterCampaigns(list, "promo")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}
