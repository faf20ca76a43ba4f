package annotation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// SnippetView is a snippet with its overlays
type SnippetView struct {
	entities.Snippet
	Selected bool
	Comments []entities.SnippetComment
	Tags     []entities.SnippetTag
	Emotion  entities.Emotion
}

// View is the rendered review state of one contact
type View struct {
	ContactID   string
	Mode        entities.ReviewMode
	Selection   []string
	Snippets    []SnippetView
	Comments    []entities.SnippetComment
	Tags        []entities.SnippetTag
	Emotions    []entities.EmotionHighlight
	OpenDialogs []string
}

// Service exposes review operations keyed by browser session and contact.
// Every mutation is persisted so the review survives restarts and eviction.
type Service struct {
	registry *Registry
}

// NewService creates a review service
func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

var errSessionClosed = errors.New("review session closed")

// do runs fn on the live session. A session evicted between lookup and use
// is fetched again.
func (s *Service) do(ctx context.Context, sessionID uuid.UUID, contactID string, mutates bool, fn func(sess *Session) error) (*View, error) {
	for attempt := 0; attempt < 2; attempt++ {
		sess, err := s.registry.Get(ctx, sessionID, contactID)
		if err != nil {
			return nil, err
		}

		view, err := s.run(ctx, sess, mutates, fn)
		if errors.Is(err, errSessionClosed) {
			continue
		}
		return view, err
	}
	return nil, errSessionClosed
}

func (s *Service) run(ctx context.Context, sess *Session, mutates bool, fn func(sess *Session) error) (*View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, errSessionClosed
	}
	sess.lastUsed = s.registry.cfg.Clock.Now()

	if fn != nil {
		if err := fn(sess); err != nil {
			return nil, err
		}
	}
	if mutates {
		s.registry.saveState(ctx, sess)
	}
	return buildView(sess), nil
}

func buildView(sess *Session) *View {
	m := sess.model
	snippets := m.Snippets()
	views := make([]SnippetView, len(snippets))
	for i, sn := range snippets {
		emotion, _ := m.EmotionFor(sn.ID)
		views[i] = SnippetView{
			Snippet:  sn,
			Selected: m.IsSelected(sn.ID),
			Comments: m.CommentsFor(sn.ID),
			Tags:     m.TagsFor(sn.ID),
			Emotion:  emotion,
		}
	}
	return &View{
		ContactID:   sess.contactID,
		Mode:        m.Mode(),
		Selection:   m.Selection(),
		Snippets:    views,
		Comments:    m.Comments(),
		Tags:        m.Tags(),
		Emotions:    m.Emotions(),
		OpenDialogs: sess.dialogs.OpenDialogs(),
	}
}

// Get returns the current review state
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID, contactID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, false, nil)
}

// ToggleMode flips multi-select mode
func (s *Service) ToggleMode(ctx context.Context, sessionID uuid.UUID, contactID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.ToggleMode()
		return nil
	})
}

// ToggleSnippet flips a snippet's membership in the selection
func (s *Service) ToggleSnippet(ctx context.Context, sessionID uuid.UUID, contactID, snippetID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.ToggleSnippet(snippetID)
		return nil
	})
}

// ClearSelection empties the selection
func (s *Service) ClearSelection(ctx context.Context, sessionID uuid.UUID, contactID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.ClearSelection()
		return nil
	})
}

// AddComment comments on the selected snippets
func (s *Service) AddComment(ctx context.Context, sessionID uuid.UUID, contactID, text string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		_, err := sess.model.AddComment(text)
		return err
	})
}

// RemoveComment deletes a comment
func (s *Service) RemoveComment(ctx context.Context, sessionID uuid.UUID, contactID, commentID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.RemoveComment(commentID)
		return nil
	})
}

// AddTag tags targetIDs, or the selection when no targets are given, and
// closes the tag entry dialog.
func (s *Service) AddTag(ctx context.Context, sessionID uuid.UUID, contactID, text string, targetIDs []string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		if _, err := sess.model.AddTag(text, targetIDs...); err != nil {
			return err
		}
		return sess.dialogs.Close(DialogTagEntry)
	})
}

// RemoveTag deletes a tag
func (s *Service) RemoveTag(ctx context.Context, sessionID uuid.UUID, contactID, tagID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.RemoveTag(tagID)
		return nil
	})
}

// ApplyEmotion labels targetIDs, or the selection when no targets are given
func (s *Service) ApplyEmotion(ctx context.Context, sessionID uuid.UUID, contactID string, emotion entities.Emotion, targetIDs []string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		if len(targetIDs) == 0 {
			targetIDs = sess.model.Selection()
		}
		_, err := sess.model.ApplyEmotion(emotion, targetIDs)
		return err
	})
}

// RemoveEmotion clears a snippet's emotion
func (s *Service) RemoveEmotion(ctx context.Context, sessionID uuid.UUID, contactID, snippetID string) (*View, error) {
	return s.do(ctx, sessionID, contactID, true, func(sess *Session) error {
		sess.model.RemoveEmotion(snippetID)
		return nil
	})
}

// OpenDialog shows a dialog and starts its dismiss timer
func (s *Service) OpenDialog(ctx context.Context, sessionID uuid.UUID, contactID, name string) (*View, error) {
	return s.do(ctx, sessionID, contactID, false, func(sess *Session) error {
		return sess.dialogs.Open(name)
	})
}

// TouchDialog resets the dismiss timer of an open dialog
func (s *Service) TouchDialog(ctx context.Context, sessionID uuid.UUID, contactID, name string) (*View, error) {
	return s.do(ctx, sessionID, contactID, false, func(sess *Session) error {
		return sess.dialogs.Touch(name)
	})
}

// CloseDialog hides a dialog
func (s *Service) CloseDialog(ctx context.Context, sessionID uuid.UUID, contactID, name string) (*View, error) {
	return s.do(ctx, sessionID, contactID, false, func(sess *Session) error {
		return sess.dialogs.Close(name)
	})
}
