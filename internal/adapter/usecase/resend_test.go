package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResend(b *fakeBackend) *Resend {
	return NewResend(&fakeCampaigns{b: b}, &fakeSchedules{b: b}, nil)
}

func TestResendNow(t *testing.T) {
	b := &fakeBackend{}
	r := newTestResend(b)

	saved := false
	r.Open(42, func() { saved = true })

	assert.False(t, r.CanSubmit(), "a group is required")
	r.SelectGroup(3)
	require.True(t, r.CanSubmit())

	require.NoError(t, r.Submit(context.Background()))
	assert.Equal(t, []string{"resend"}, b.calls)
	require.Len(t, b.resends, 1)
	assert.Equal(t, [2]int{42, 3}, b.resends[0])
	assert.True(t, saved)
	assert.False(t, r.IsOpen())
}

func TestResendSchedule(t *testing.T) {
	b := &fakeBackend{}
	r := newTestResend(b)
	r.Open(42, nil)
	r.SelectGroup(3)
	r.SetSendMode(SendSchedule)

	assert.False(t, r.CanSubmit())
	r.SetScheduleDate("2026-08-15")
	r.SetScheduleTime("14:30")
	require.True(t, r.CanSubmit())

	require.NoError(t, r.Submit(context.Background()))
	assert.Equal(t, []string{"schedule"}, b.calls)
	require.Len(t, b.schedules, 1)
	assert.Equal(t, "2026-08-15T14:30:00", b.schedules[0].DateTime)
	assert.Equal(t, 42, b.schedules[0].CampaignID)
	assert.Equal(t, 3, b.schedules[0].GroupID)
}

func TestResendRejectsDraft(t *testing.T) {
	b := &fakeBackend{}
	r := newTestResend(b)
	r.Open(42, nil)
	r.SelectGroup(3)
	r.SetSendMode(SendDraft)

	assert.False(t, r.CanSubmit())
	assert.ErrorIs(t, r.Submit(context.Background()), ErrIncompleteStep)
	assert.Empty(t, b.calls)
}

func TestResendFailureKeepsOpen(t *testing.T) {
	b := &fakeBackend{resendErr: errors.New("boom")}
	r := newTestResend(b)
	r.Open(42, nil)
	r.SelectGroup(3)

	require.Error(t, r.Submit(context.Background()))
	assert.True(t, r.IsOpen())
	assert.False(t, r.IsLoading())

	b.resendErr = nil
	require.NoError(t, r.Submit(context.Background()))
	assert.False(t, r.IsOpen())
}
