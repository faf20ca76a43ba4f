package annotation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

type stubSource struct {
	calls int
}

func (s *stubSource) Snippets(_ context.Context, contactID string) ([]entities.Snippet, error) {
	s.calls++
	if contactID == "missing" {
		return nil, entities.ErrContactNotFound
	}
	return testSnippets(), nil
}

type serviceFixture struct {
	svc      *Service
	registry *Registry
	storage  *cache.MemoryStore
	source   *stubSource
	clock    *clock.Mock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	mock := clock.NewMock()
	storage := cache.NewMemoryStoreWithClock(time.Hour, mock)
	t.Cleanup(func() { _ = storage.Close() })

	f := &serviceFixture{storage: storage, source: &stubSource{}, clock: mock}
	f.registry = f.newRegistry(t)
	f.svc = NewService(f.registry)
	return f
}

func (f *serviceFixture) newRegistry(t *testing.T) *Registry {
	r := NewRegistry(f.source, f.storage, RegistryConfig{
		Clock:        f.clock,
		IdleEviction: 10 * time.Minute,
		NewID:        seqIDs(),
	}, zaptest.NewLogger(t))
	t.Cleanup(r.Close)
	return r
}

func TestService_GetBuildsView(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	view, err := f.svc.Get(ctx, sid, "C100")
	require.NoError(t, err)
	assert.Equal(t, "C100", view.ContactID)
	assert.Equal(t, entities.ReviewModeBrowsing, view.Mode)
	require.Len(t, view.Snippets, 3)
	assert.Equal(t, "B", view.Snippets[1].ID)
	assert.Empty(t, view.OpenDialogs)

	_, err = f.svc.Get(ctx, sid, "C100")
	require.NoError(t, err)
	assert.Equal(t, 1, f.source.calls, "sessions are cached")
}

func TestService_UnknownContact(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Get(context.Background(), uuid.New(), "missing")
	assert.ErrorIs(t, err, entities.ErrContactNotFound)
	assert.Zero(t, f.registry.Len())
}

func TestService_AnnotationFlow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	_, err := f.svc.ToggleMode(ctx, sid, "C100")
	require.NoError(t, err)
	_, err = f.svc.ToggleSnippet(ctx, sid, "C100", "A")
	require.NoError(t, err)
	_, err = f.svc.ToggleSnippet(ctx, sid, "C100", "B")
	require.NoError(t, err)

	view, err := f.svc.AddComment(ctx, sid, "C100", "customer sounds worried")
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.True(t, view.Snippets[0].Selected)
	assert.Len(t, view.Snippets[1].Comments, 1)

	view, err = f.svc.ApplyEmotion(ctx, sid, "C100", entities.EmotionAnxiety, nil)
	require.NoError(t, err)
	assert.Len(t, view.Emotions, 2, "no targets means the selection")
	assert.Equal(t, entities.EmotionAnxiety, view.Snippets[1].Emotion)

	view, err = f.svc.RemoveEmotion(ctx, sid, "C100", "A")
	require.NoError(t, err)
	assert.Len(t, view.Emotions, 1)

	view, err = f.svc.ClearSelection(ctx, sid, "C100")
	require.NoError(t, err)
	assert.Empty(t, view.Selection)

	_, err = f.svc.AddComment(ctx, sid, "C100", "again")
	assert.ErrorIs(t, err, usecaseErrors.ErrEmptySelection)

	view, err = f.svc.RemoveComment(ctx, sid, "C100", view.Comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, view.Comments)
}

func TestService_AddTagClosesTagEntry(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	view, err := f.svc.OpenDialog(ctx, sid, "C100", DialogTagEntry)
	require.NoError(t, err)
	assert.Equal(t, []string{DialogTagEntry}, view.OpenDialogs)

	view, err = f.svc.AddTag(ctx, sid, "C100", "refund", []string{"C"})
	require.NoError(t, err)
	assert.Empty(t, view.OpenDialogs)
	require.Len(t, view.Tags, 1)

	view, err = f.svc.RemoveTag(ctx, sid, "C100", view.Tags[0].ID)
	require.NoError(t, err)
	assert.Empty(t, view.Tags)
}

func TestService_DialogLifecycle(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	_, err := f.svc.OpenDialog(ctx, sid, "C100", DialogLegend)
	require.NoError(t, err)
	_, err = f.svc.TouchDialog(ctx, sid, "C100", DialogLegend)
	require.NoError(t, err)
	view, err := f.svc.CloseDialog(ctx, sid, "C100", DialogLegend)
	require.NoError(t, err)
	assert.Empty(t, view.OpenDialogs)

	_, err = f.svc.OpenDialog(ctx, sid, "C100", "nope")
	assert.ErrorIs(t, err, usecaseErrors.ErrUnknownDialog)
}

func TestService_StatePersistsAcrossRegistries(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	_, err := f.svc.AddTag(ctx, sid, "C100", "billing", []string{"B"})
	require.NoError(t, err)
	_, err = f.svc.ApplyEmotion(ctx, sid, "C100", entities.EmotionPanic, []string{"B"})
	require.NoError(t, err)

	other := NewService(f.newRegistry(t))
	view, err := other.Get(ctx, sid, "C100")
	require.NoError(t, err)
	require.Len(t, view.Tags, 1)
	assert.Equal(t, "billing", view.Tags[0].Tag)
	assert.Equal(t, entities.EmotionPanic, view.Snippets[1].Emotion)

	view, err = other.Get(ctx, uuid.New(), "C100")
	require.NoError(t, err)
	assert.Empty(t, view.Tags, "reviews are scoped to the browser session")
}

func TestService_MalformedStateStartsFresh(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	require.NoError(t, f.storage.Set(ctx, Namespace(sid, "C100"), stateKey, "{broken"))

	view, err := f.svc.Get(ctx, sid, "C100")
	require.NoError(t, err)
	assert.Empty(t, view.Tags)
}

func TestRegistry_EvictIdle(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	sid := uuid.New()

	_, err := f.svc.Get(ctx, sid, "C100")
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, sid, "C200")
	require.NoError(t, err)

	f.clock.Add(6 * time.Minute)
	_, err = f.svc.Get(ctx, sid, "C200")
	require.NoError(t, err)

	f.clock.Add(6 * time.Minute)
	assert.Equal(t, 1, f.registry.EvictIdle())
	assert.Equal(t, 1, f.registry.Len())

	_, err = f.svc.Get(ctx, sid, "C100")
	require.NoError(t, err)
	assert.Equal(t, 3, f.source.calls, "evicted sessions are rebuilt on demand")
}

func TestRegistry_StartAndClose(t *testing.T) {
	f := newServiceFixture(t)

	f.registry.Start()
	_, err := f.svc.Get(context.Background(), uuid.New(), "C100")
	require.NoError(t, err)

	f.registry.Close()
	assert.Zero(t, f.registry.Len())
}

func TestRegistry_SourceErrorIsReturned(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.svc.ToggleMode(context.Background(), uuid.New(), "missing")
	assert.True(t, errors.Is(err, entities.ErrContactNotFound))
}
