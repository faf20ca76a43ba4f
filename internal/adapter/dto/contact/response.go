package contact

import "github.com/johnquangdev/contact-qa/internal/domain/entities"

// UploadResponse reports how many contacts were stored
type UploadResponse struct {
	Records int `json:"records"`
}

// AssessmentResponse is the results view of one contact
type AssessmentResponse struct {
	Assessment *entities.AssessmentDetails          `json:"assessment"`
	Feedback   []*entities.QualityAssessorFeedback `json:"feedback"`
}

// SnippetsResponse lists stored snippets of a contact
type SnippetsResponse struct {
	ContactID string             `json:"contactId"`
	Snippets  []entities.Snippet `json:"snippets"`
}
