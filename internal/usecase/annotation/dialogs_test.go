package annotation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

func newTestDialogs() (*Dialogs, *clock.Mock, *atomic.Int32) {
	mock := clock.NewMock()
	var dismissed atomic.Int32
	d := NewDialogs(mock, nil, func(string) { dismissed.Add(1) })
	return d, mock, &dismissed
}

func TestDialogs_TagEntryDismissesAfterFiveSeconds(t *testing.T) {
	d, mock, dismissed := newTestDialogs()
	defer d.Stop()

	require.NoError(t, d.Open(DialogTagEntry))
	mock.Add(4 * time.Second)
	assert.True(t, d.IsOpen(DialogTagEntry))

	mock.Add(time.Second)
	assert.Eventually(t, func() bool { return !d.IsOpen(DialogTagEntry) }, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return dismissed.Load() == 1 }, time.Second, time.Millisecond)
}

func TestDialogs_LegendDismissesAfterSevenSeconds(t *testing.T) {
	d, mock, _ := newTestDialogs()
	defer d.Stop()

	require.NoError(t, d.Open(DialogLegend))
	mock.Add(6 * time.Second)
	assert.True(t, d.IsOpen(DialogLegend))

	mock.Add(time.Second)
	assert.Eventually(t, func() bool { return !d.IsOpen(DialogLegend) }, time.Second, time.Millisecond)
}

func TestDialogs_TouchResetsTimer(t *testing.T) {
	d, mock, _ := newTestDialogs()
	defer d.Stop()

	require.NoError(t, d.Open(DialogTagEntry))
	mock.Add(4 * time.Second)
	require.NoError(t, d.Touch(DialogTagEntry))
	mock.Add(4 * time.Second)
	assert.True(t, d.IsOpen(DialogTagEntry))

	require.NoError(t, d.Open(DialogTagEntry))
	mock.Add(4 * time.Second)
	assert.True(t, d.IsOpen(DialogTagEntry), "reopening restarts the timer")

	mock.Add(time.Second)
	assert.Eventually(t, func() bool { return !d.IsOpen(DialogTagEntry) }, time.Second, time.Millisecond)
}

func TestDialogs_TouchDoesNotOpen(t *testing.T) {
	d, _, _ := newTestDialogs()
	defer d.Stop()

	require.NoError(t, d.Touch(DialogLegend))
	assert.False(t, d.IsOpen(DialogLegend))
}

func TestDialogs_CloseCancelsTimer(t *testing.T) {
	d, mock, dismissed := newTestDialogs()
	defer d.Stop()

	require.NoError(t, d.Open(DialogTagEntry))
	require.NoError(t, d.Close(DialogTagEntry))
	mock.Add(time.Minute)

	assert.False(t, d.IsOpen(DialogTagEntry))
	assert.Zero(t, dismissed.Load())
}

func TestDialogs_StopCancelsEverything(t *testing.T) {
	d, mock, dismissed := newTestDialogs()

	require.NoError(t, d.Open(DialogTagEntry))
	require.NoError(t, d.Open(DialogLegend))
	assert.Equal(t, []string{DialogLegend, DialogTagEntry}, d.OpenDialogs())

	d.Stop()
	mock.Add(time.Minute)

	assert.Empty(t, d.OpenDialogs())
	assert.Zero(t, dismissed.Load())

	require.NoError(t, d.Open(DialogLegend))
	assert.False(t, d.IsOpen(DialogLegend), "stopped dialogs stay closed")
}

func TestDialogs_UnknownDialog(t *testing.T) {
	d, _, _ := newTestDialogs()
	defer d.Stop()

	assert.ErrorIs(t, d.Open("settings"), usecaseErrors.ErrUnknownDialog)
	assert.ErrorIs(t, d.Touch("settings"), usecaseErrors.ErrUnknownDialog)
	assert.ErrorIs(t, d.Close("settings"), usecaseErrors.ErrUnknownDialog)
}
