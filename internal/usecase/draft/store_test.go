package draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/infrastructure/cache"
)

func newTestStore(t *testing.T) (*Store, *cache.MemoryStore) {
	t.Helper()
	mem := cache.NewMemoryStore(time.Hour)
	t.Cleanup(func() { _ = mem.Close() })
	return NewStore(mem, zaptest.NewLogger(t)), mem
}

func fullDraft() entities.DraftFormData {
	return entities.DraftFormData{
		ContactID:             "C100",
		Evaluator:             "E1",
		Transcript:            "Agent: hi\nCustomer: hi",
		IsSpecialServiceTeam:  entities.SpecialServiceYes,
		OverallSummary:        "Customer asked about a refund.",
		DetailedSummaryPoints: []string{"asked about refund", "agent escalated"},
		AssessmentQuestions: []entities.AssessmentQuestion{
			{ID: "q1", AIAssessment: "no complaint", AssessorFeedback: "agree"},
		},
	}
}

func TestStore_SaveThenLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	want := fullDraft()
	store.Save(ctx, sid, want)

	got, notice := store.Load(ctx, sid)
	assert.Nil(t, notice)
	assert.Equal(t, want, got)
}

func TestStore_LoadEmptyReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	got, notice := store.Load(context.Background(), uuid.New())
	assert.Nil(t, notice)
	assert.Equal(t, entities.NewDraftFormData(), got)
	assert.NotNil(t, got.DetailedSummaryPoints)
	assert.NotNil(t, got.AssessmentQuestions)
	assert.Equal(t, entities.SpecialServiceNo, got.IsSpecialServiceTeam)
}

func TestStore_SaveSkipsEmptyValues(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	store.Save(ctx, sid, fullDraft())

	store.Save(ctx, sid, entities.DraftFormData{
		ContactID:            "C100",
		Transcript:           "",
		IsSpecialServiceTeam: entities.SpecialServiceUnset,
	})

	got, notice := store.Load(ctx, sid)
	assert.Nil(t, notice)
	assert.Equal(t, fullDraft(), got, "empty values must not erase stored ones")
}

func TestStore_SaveOverwritesWithNonEmptyValues(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	store.Save(ctx, sid, fullDraft())
	store.Save(ctx, sid, entities.DraftFormData{
		Transcript:            "Agent: bye",
		IsSpecialServiceTeam:  entities.SpecialServiceNo,
		DetailedSummaryPoints: []string{"new point"},
	})

	got, _ := store.Load(ctx, sid)
	assert.Equal(t, "Agent: bye", got.Transcript)
	assert.Equal(t, entities.SpecialServiceNo, got.IsSpecialServiceTeam)
	assert.Equal(t, []string{"new point"}, got.DetailedSummaryPoints)
	assert.Equal(t, "C100", got.ContactID)
}

func TestStore_SaveIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	store.Save(ctx, sid, fullDraft())
	first, _ := store.Load(ctx, sid)
	store.Save(ctx, sid, fullDraft())
	second, _ := store.Load(ctx, sid)

	assert.Equal(t, first, second)
}

func TestStore_Clear(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()
	other := uuid.New()

	store.Save(ctx, sid, fullDraft())
	store.Save(ctx, other, fullDraft())

	store.Clear(ctx, sid)

	got, notice := store.Load(ctx, sid)
	assert.Nil(t, notice)
	assert.Equal(t, entities.NewDraftFormData(), got)
	assert.Equal(t, 1, mem.Len(), "other sessions are untouched")
}

func TestStore_UnsavedMarker(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	assert.False(t, store.HasUnsaved(ctx, sid))

	store.Save(ctx, sid, fullDraft())
	assert.False(t, store.HasUnsaved(ctx, sid), "saving a draft does not mark it unsaved")

	store.MarkUnsaved(ctx, sid)
	assert.True(t, store.HasUnsaved(ctx, sid))
	assert.False(t, store.HasUnsaved(ctx, uuid.New()))

	got, notice := store.Load(ctx, sid)
	assert.Nil(t, notice)
	assert.Equal(t, fullDraft(), got)

	store.Clear(ctx, sid)
	assert.False(t, store.HasUnsaved(ctx, sid))
	assert.Equal(t, 0, mem.Len())
}

func TestStore_LoadMalformedJSONReturnsDefaultsWithWarning(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	store.Save(ctx, sid, fullDraft())
	require.NoError(t, mem.Set(ctx, Namespace(sid), KeySummaryPoints, "{not json"))

	got, notice := store.Load(ctx, sid)
	require.NotNil(t, notice)
	assert.Equal(t, entities.NoticeWarning, notice.Variant)
	assert.Equal(t, LoadFailedNotice.Description, notice.Description)
	assert.Equal(t, entities.NewDraftFormData(), got)
}

func TestStore_LoadUnknownSpecialServiceFallsBackToNo(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	sid := uuid.New()

	require.NoError(t, mem.Set(ctx, Namespace(sid), KeySpecialService, "maybe"))

	got, notice := store.Load(ctx, sid)
	assert.Nil(t, notice)
	assert.Equal(t, entities.SpecialServiceNo, got.IsSpecialServiceTeam)
}

type failingStorage struct{}

func (failingStorage) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (failingStorage) Set(context.Context, string, string, string) error {
	return errors.New("storage unavailable")
}

func (failingStorage) Delete(context.Context, string, ...string) error {
	return errors.New("storage unavailable")
}

func TestStore_StorageFailuresAreNotSurfaced(t *testing.T) {
	store := NewStore(failingStorage{}, zaptest.NewLogger(t))
	ctx := context.Background()
	sid := uuid.New()

	assert.NotPanics(t, func() {
		store.Save(ctx, sid, fullDraft())
		store.MarkUnsaved(ctx, sid)
		store.Clear(ctx, sid)
	})
	assert.False(t, store.HasUnsaved(ctx, sid))

	got, notice := store.Load(ctx, sid)
	require.NotNil(t, notice)
	assert.Equal(t, entities.NewDraftFormData(), got)
}
