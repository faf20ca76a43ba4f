package entities

// NoticeVariant mirrors the toast variants of the dashboard
type NoticeVariant string

const (
	NoticeSuccess     NoticeVariant = "success"
	NoticeInfo        NoticeVariant = "info"
	NoticeWarning     NoticeVariant = "warning"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a non-blocking, user-facing message returned with a result
type Notice struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     NoticeVariant `json:"variant"`
}

// NewNotice builds a notice
func NewNotice(variant NoticeVariant, title, description string) *Notice {
	return &Notice{Title: title, Description: description, Variant: variant}
}
