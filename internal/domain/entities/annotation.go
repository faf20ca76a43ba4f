package entities

// Emotion is the single-valued label a snippet can carry
type Emotion string

const (
	EmotionNone    Emotion = ""
	EmotionSarcasm Emotion = "Sarcasm"
	EmotionPanic   Emotion = "Panic"
	EmotionAnxiety Emotion = "Anxiety"
)

// IsValid reports whether e is one of the supported emotions
func (e Emotion) IsValid() bool {
	switch e {
	case EmotionSarcasm, EmotionPanic, EmotionAnxiety:
		return true
	}
	return false
}

// ReviewMode is the selection state of the transcript review
type ReviewMode string

const (
	ReviewModeBrowsing  ReviewMode = "browsing"
	ReviewModeSelecting ReviewMode = "selecting"
)

// SnippetComment is a comment spanning one or more snippets
type SnippetComment struct {
	ID         string   `json:"id"`
	SnippetIDs []string `json:"snippetIds"`
	Comment    string   `json:"comment"`
}

// SnippetTag is a tag spanning one or more snippets
type SnippetTag struct {
	ID         string   `json:"id"`
	SnippetIDs []string `json:"snippetIds"`
	Tag        string   `json:"tag"`
}

// EmotionHighlight labels a snippet with an emotion
type EmotionHighlight struct {
	SnippetID string  `json:"snippetId"`
	Emotion   Emotion `json:"emotion"`
}
