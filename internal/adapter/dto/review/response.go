package review

import "github.com/johnquangdev/contact-qa/internal/domain/entities"

// SnippetResponse is a transcript turn with its overlays
type SnippetResponse struct {
	ID       string                    `json:"id"`
	Speaker  string                    `json:"speaker"`
	Text     string                    `json:"text"`
	Selected bool                      `json:"selected"`
	Emotion  string                    `json:"emotion,omitempty"`
	Comments []entities.SnippetComment `json:"comments"`
	Tags     []entities.SnippetTag     `json:"tags"`
}

// ViewResponse is the review state of one contact
type ViewResponse struct {
	ContactID   string                      `json:"contactId"`
	Mode        string                      `json:"mode" enums:"browsing,selecting"`
	Selection   []string                    `json:"selection"`
	Snippets    []SnippetResponse           `json:"snippets"`
	Comments    []entities.SnippetComment   `json:"comments"`
	Tags        []entities.SnippetTag       `json:"tags"`
	Emotions    []entities.EmotionHighlight `json:"emotions"`
	OpenDialogs []string                    `json:"openDialogs"`
}
