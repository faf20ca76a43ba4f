package form

import (
	"encoding/json"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// SaveDraftRequest is a full draft written to the session store
type SaveDraftRequest struct {
	ContactID             string                        `json:"contactId"`
	Evaluator             string                        `json:"evaluator"`
	Transcript            string                        `json:"transcript"`
	IsSpecialServiceTeam  string                        `json:"isSpecialServiceTeam" validate:"omitempty,oneof=yes no"`
	OverallSummary        string                        `json:"overallSummary"`
	DetailedSummaryPoints []string                      `json:"detailedSummaryPoints"`
	AssessmentQuestions   []entities.AssessmentQuestion `json:"assessmentQuestions"`
}

// ToDraft converts the request into draft form data
func (r SaveDraftRequest) ToDraft() entities.DraftFormData {
	return entities.DraftFormData{
		ContactID:             r.ContactID,
		Evaluator:             r.Evaluator,
		Transcript:            r.Transcript,
		IsSpecialServiceTeam:  entities.SpecialService(r.IsSpecialServiceTeam),
		OverallSummary:        r.OverallSummary,
		DetailedSummaryPoints: r.DetailedSummaryPoints,
		AssessmentQuestions:   r.AssessmentQuestions,
	}
}

// UpdateFieldRequest sets one form field
type UpdateFieldRequest struct {
	Field string          `json:"field" validate:"required,oneof=contactId evaluator transcript isSpecialServiceTeam overallSummary detailedSummaryPoints assessmentQuestions"`
	Value json.RawMessage `json:"value" validate:"required" swaggertype:"object"`
}

// ChangeContactIDRequest proposes a new contact id
type ChangeContactIDRequest struct {
	ContactID string `json:"contactId"`
}
