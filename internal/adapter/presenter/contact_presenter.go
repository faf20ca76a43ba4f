package presenter

import (
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/contact"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	contactUsecase "github.com/johnquangdev/contact-qa/internal/usecase/contact"
)

// ToAssessmentResponse converts a results view to AssessmentResponse DTO
func ToAssessmentResponse(v *contactUsecase.AssessmentView) *contact.AssessmentResponse {
	if v == nil {
		return nil
	}
	return &contact.AssessmentResponse{
		Assessment: v.Details,
		Feedback:   orEmpty(v.Feedback),
	}
}

// ToSnippetsResponse converts stored snippets to SnippetsResponse DTO
func ToSnippetsResponse(contactID string, snippets []entities.Snippet) *contact.SnippetsResponse {
	return &contact.SnippetsResponse{
		ContactID: contactID,
		Snippets:  orEmpty(snippets),
	}
}
