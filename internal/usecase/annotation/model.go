package annotation

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// IDFunc generates annotation ids with the given prefix
type IDFunc func(prefix string) string

// NewID returns a time-ordered id such as "comment-0190..."
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}

// Model holds selection, comments, tags and emotion highlights over a fixed
// list of snippets. It is not safe for concurrent use; Session serializes it.
type Model struct {
	snippets []entities.Snippet
	known    map[string]struct{}
	newID    IDFunc

	mode      entities.ReviewMode
	selection []string
	selected  map[string]struct{}

	comments          []entities.SnippetComment
	tags              []entities.SnippetTag
	emotions          []entities.EmotionHighlight
	commentByID       map[string]entities.SnippetComment
	tagByID           map[string]entities.SnippetTag
	commentsBySnippet map[string][]string
	tagsBySnippet     map[string][]string
	emotionBySnippet  map[string]entities.Emotion
}

// NewModel creates a browsing-mode model over snippets
func NewModel(snippets []entities.Snippet, newID IDFunc) *Model {
	if newID == nil {
		newID = NewID
	}
	m := &Model{
		snippets: append([]entities.Snippet{}, snippets...),
		known:    make(map[string]struct{}, len(snippets)),
		newID:    newID,
		mode:     entities.ReviewModeBrowsing,
	}
	for _, s := range snippets {
		m.known[s.ID] = struct{}{}
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.selection = nil
	m.selected = make(map[string]struct{})
	m.comments = nil
	m.tags = nil
	m.emotions = nil
	m.commentByID = make(map[string]entities.SnippetComment)
	m.tagByID = make(map[string]entities.SnippetTag)
	m.commentsBySnippet = make(map[string][]string)
	m.tagsBySnippet = make(map[string][]string)
	m.emotionBySnippet = make(map[string]entities.Emotion)
}

// Snippets returns the reviewed snippets
func (m *Model) Snippets() []entities.Snippet {
	return append([]entities.Snippet{}, m.snippets...)
}

// HasSnippet reports whether id belongs to the reviewed transcript
func (m *Model) HasSnippet(id string) bool {
	_, ok := m.known[id]
	return ok
}

// Mode returns the current selection mode
func (m *Model) Mode() entities.ReviewMode {
	return m.mode
}

// ToggleMode flips between browsing and selecting. Leaving selecting mode
// empties the selection.
func (m *Model) ToggleMode() entities.ReviewMode {
	if m.mode == entities.ReviewModeSelecting {
		m.mode = entities.ReviewModeBrowsing
		m.ClearSelection()
	} else {
		m.mode = entities.ReviewModeSelecting
	}
	return m.mode
}

// ToggleSnippet flips the membership of id in the selection. It is a no-op
// outside selecting mode and for unknown ids; the result reports whether the
// selection changed.
func (m *Model) ToggleSnippet(id string) bool {
	if m.mode != entities.ReviewModeSelecting || !m.HasSnippet(id) {
		return false
	}
	if _, ok := m.selected[id]; ok {
		delete(m.selected, id)
		m.selection = slices.DeleteFunc(m.selection, func(s string) bool { return s == id })
		return true
	}
	m.selected[id] = struct{}{}
	m.selection = append(m.selection, id)
	return true
}

// IsSelected reports whether id is selected
func (m *Model) IsSelected(id string) bool {
	_, ok := m.selected[id]
	return ok
}

// Selection returns a copy of the selected ids in selection order
func (m *Model) Selection() []string {
	return append([]string{}, m.selection...)
}

// ClearSelection empties the selection
func (m *Model) ClearSelection() {
	m.selection = nil
	m.selected = make(map[string]struct{})
}

// AddComment attaches text to a copy of the current selection. The selection
// is kept.
func (m *Model) AddComment(text string) (entities.SnippetComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.SnippetComment{}, usecaseErrors.ErrBlankText
	}
	if len(m.selection) == 0 {
		return entities.SnippetComment{}, usecaseErrors.ErrEmptySelection
	}

	c := entities.SnippetComment{
		ID:         m.newID("comment"),
		SnippetIDs: m.Selection(),
		Comment:    text,
	}
	m.insertComment(c)
	return cloneComment(c), nil
}

// AddTag attaches a tag to targetIDs, or to a copy of the selection when no
// targets are given.
func (m *Model) AddTag(text string, targetIDs ...string) (entities.SnippetTag, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.SnippetTag{}, usecaseErrors.ErrBlankText
	}

	ids := m.Selection()
	if len(targetIDs) > 0 {
		ids = make([]string, 0, len(targetIDs))
		seen := make(map[string]struct{}, len(targetIDs))
		for _, id := range targetIDs {
			if !m.HasSnippet(id) {
				return entities.SnippetTag{}, usecaseErrors.ErrSnippetNotFound
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return entities.SnippetTag{}, usecaseErrors.ErrEmptySelection
	}

	t := entities.SnippetTag{
		ID:         m.newID("tag"),
		SnippetIDs: ids,
		Tag:        text,
	}
	m.insertTag(t)
	return cloneTag(t), nil
}

func (m *Model) insertComment(c entities.SnippetComment) {
	m.comments = append(m.comments, c)
	m.commentByID[c.ID] = c
	for _, sid := range c.SnippetIDs {
		m.commentsBySnippet[sid] = append(m.commentsBySnippet[sid], c.ID)
	}
}

func (m *Model) insertTag(t entities.SnippetTag) {
	m.tags = append(m.tags, t)
	m.tagByID[t.ID] = t
	for _, sid := range t.SnippetIDs {
		m.tagsBySnippet[sid] = append(m.tagsBySnippet[sid], t.ID)
	}
}

// RemoveComment deletes a comment; absent ids are ignored
func (m *Model) RemoveComment(id string) bool {
	i := slices.IndexFunc(m.comments, func(c entities.SnippetComment) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	for _, sid := range m.comments[i].SnippetIDs {
		m.commentsBySnippet[sid] = removeID(m.commentsBySnippet[sid], id)
		if len(m.commentsBySnippet[sid]) == 0 {
			delete(m.commentsBySnippet, sid)
		}
	}
	m.comments = slices.Delete(m.comments, i, i+1)
	delete(m.commentByID, id)
	return true
}

// RemoveTag deletes a tag; absent ids are ignored
func (m *Model) RemoveTag(id string) bool {
	i := slices.IndexFunc(m.tags, func(t entities.SnippetTag) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	for _, sid := range m.tags[i].SnippetIDs {
		m.tagsBySnippet[sid] = removeID(m.tagsBySnippet[sid], id)
		if len(m.tagsBySnippet[sid]) == 0 {
			delete(m.tagsBySnippet, sid)
		}
	}
	m.tags = slices.Delete(m.tags, i, i+1)
	delete(m.tagByID, id)
	return true
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(s string) bool { return s == id })
}

// ApplyEmotion labels every target with emotion, replacing any previous
// label. Empty targets or an unset emotion are a no-op. It returns the number
// of snippets labeled.
func (m *Model) ApplyEmotion(emotion entities.Emotion, targetIDs []string) (int, error) {
	if emotion == entities.EmotionNone || len(targetIDs) == 0 {
		return 0, nil
	}
	if !emotion.IsValid() {
		return 0, usecaseErrors.ErrInvalidEmotion
	}

	n := 0
	for _, id := range targetIDs {
		if !m.HasSnippet(id) {
			continue
		}
		if _, ok := m.emotionBySnippet[id]; ok {
			i := slices.IndexFunc(m.emotions, func(e entities.EmotionHighlight) bool { return e.SnippetID == id })
			m.emotions[i].Emotion = emotion
		} else {
			m.emotions = append(m.emotions, entities.EmotionHighlight{SnippetID: id, Emotion: emotion})
		}
		m.emotionBySnippet[id] = emotion
		n++
	}
	return n, nil
}

// RemoveEmotion clears the label of a snippet; absent labels are ignored
func (m *Model) RemoveEmotion(snippetID string) bool {
	if _, ok := m.emotionBySnippet[snippetID]; !ok {
		return false
	}
	delete(m.emotionBySnippet, snippetID)
	m.emotions = slices.DeleteFunc(m.emotions, func(e entities.EmotionHighlight) bool { return e.SnippetID == snippetID })
	return true
}

// CommentsFor returns the comments attached to a snippet
func (m *Model) CommentsFor(snippetID string) []entities.SnippetComment {
	ids := m.commentsBySnippet[snippetID]
	out := make([]entities.SnippetComment, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneComment(m.commentByID[id]))
	}
	return out
}

// TagsFor returns the tags attached to a snippet
func (m *Model) TagsFor(snippetID string) []entities.SnippetTag {
	ids := m.tagsBySnippet[snippetID]
	out := make([]entities.SnippetTag, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneTag(m.tagByID[id]))
	}
	return out
}

// EmotionFor returns the label of a snippet
func (m *Model) EmotionFor(snippetID string) (entities.Emotion, bool) {
	e, ok := m.emotionBySnippet[snippetID]
	return e, ok
}

// Comments returns every comment in creation order
func (m *Model) Comments() []entities.SnippetComment {
	out := make([]entities.SnippetComment, len(m.comments))
	for i, c := range m.comments {
		out[i] = cloneComment(c)
	}
	return out
}

// Tags returns every tag in creation order
func (m *Model) Tags() []entities.SnippetTag {
	out := make([]entities.SnippetTag, len(m.tags))
	for i, t := range m.tags {
		out[i] = cloneTag(t)
	}
	return out
}

// Emotions returns every emotion highlight
func (m *Model) Emotions() []entities.EmotionHighlight {
	return append([]entities.EmotionHighlight{}, m.emotions...)
}

func cloneComment(c entities.SnippetComment) entities.SnippetComment {
	c.SnippetIDs = append([]string{}, c.SnippetIDs...)
	return c
}

func cloneTag(t entities.SnippetTag) entities.SnippetTag {
	t.SnippetIDs = append([]string{}, t.SnippetIDs...)
	return t
}
