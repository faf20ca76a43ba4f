package review

// AddCommentRequest comments on the selected snippets
type AddCommentRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// AddTagRequest tags snippets; no snippet ids means the selection
type AddTagRequest struct {
	Text       string   `json:"text" validate:"notblank"`
	SnippetIDs []string `json:"snippetIds"`
}

// ApplyEmotionRequest labels snippets; no snippet ids means the selection
type ApplyEmotionRequest struct {
	Emotion    string   `json:"emotion" validate:"required,oneof=Sarcasm Panic Anxiety"`
	SnippetIDs []string `json:"snippetIds"`
}
