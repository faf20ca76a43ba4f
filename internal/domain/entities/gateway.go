package entities

// Persistence gateway operations
const (
	OpSaveAssessmentDetails = "save-assessment-details"
	OpQAFeedback            = "qa-feedback"
	OpSnippets              = "snippets"
	OpUploadDetails         = "upload-details"
	OpListContacts          = "list-contacts"
	OpFormatTranscript      = "format-transcript"
)

// InvokeResult is the generic answer of the persistence gateway
type InvokeResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Succeeded wraps data in a successful result
func Succeeded(data any) InvokeResult {
	return InvokeResult{Success: true, Data: data}
}

// Failed wraps err in a failed result
func Failed(err error) InvokeResult {
	return InvokeResult{Success: false, Error: err.Error()}
}
