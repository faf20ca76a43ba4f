package annotation

import (
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// State is the serializable form of a Model
type State struct {
	Mode      entities.ReviewMode         `json:"mode"`
	Selection []string                    `json:"selection"`
	Comments  []entities.SnippetComment   `json:"comments"`
	Tags      []entities.SnippetTag       `json:"tags"`
	Emotions  []entities.EmotionHighlight `json:"emotions"`
}

// Snapshot captures the model state
func (m *Model) Snapshot() State {
	return State{
		Mode:      m.mode,
		Selection: m.Selection(),
		Comments:  m.Comments(),
		Tags:      m.Tags(),
		Emotions:  m.Emotions(),
	}
}

// Restore replaces the model state with st. References to snippets that are
// not part of the transcript are dropped.
func (m *Model) Restore(st State) {
	m.reset()

	m.mode = entities.ReviewModeBrowsing
	if st.Mode == entities.ReviewModeSelecting {
		m.mode = entities.ReviewModeSelecting
		for _, id := range st.Selection {
			if m.HasSnippet(id) && !m.IsSelected(id) {
				m.selected[id] = struct{}{}
				m.selection = append(m.selection, id)
			}
		}
	}

	for _, c := range st.Comments {
		if c.SnippetIDs = m.knownIDs(c.SnippetIDs); len(c.SnippetIDs) > 0 && c.ID != "" {
			m.insertComment(c)
		}
	}
	for _, t := range st.Tags {
		if t.SnippetIDs = m.knownIDs(t.SnippetIDs); len(t.SnippetIDs) > 0 && t.ID != "" {
			m.insertTag(t)
		}
	}
	for _, e := range st.Emotions {
		if e.Emotion.IsValid() {
			_, _ = m.ApplyEmotion(e.Emotion, []string{e.SnippetID})
		}
	}
}

func (m *Model) knownIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if m.HasSnippet(id) {
			out = append(out, id)
		}
	}
	return out
}
