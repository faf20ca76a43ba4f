package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// Field names an editable form field
type Field string

const (
	FieldContactID           Field = "contactId"
	FieldEvaluator           Field = "evaluator"
	FieldTranscript          Field = "transcript"
	FieldSpecialService      Field = "isSpecialServiceTeam"
	FieldOverallSummary      Field = "overallSummary"
	FieldSummaryPoints       Field = "detailedSummaryPoints"
	FieldAssessmentQuestions Field = "assessmentQuestions"
)

// marksUnsaved reports whether editing f counts as unsaved work
func (f Field) marksUnsaved() bool {
	switch f {
	case FieldTranscript, FieldEvaluator, FieldSpecialService:
		return true
	}
	return false
}

// ParseFieldValue decodes a JSON value into the Go type UpdateField expects
// for field: string, []string or []entities.AssessmentQuestion.
func ParseFieldValue(field Field, raw json.RawMessage) (any, error) {
	switch field {
	case FieldContactID, FieldEvaluator, FieldTranscript, FieldSpecialService, FieldOverallSummary:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s must be a string", usecaseErrors.ErrInvalidInput, field)
		}
		return s, nil
	case FieldSummaryPoints:
		var points []string
		if err := json.Unmarshal(raw, &points); err != nil {
			return nil, fmt.Errorf("%w: %s must be a list of strings", usecaseErrors.ErrInvalidInput, field)
		}
		return points, nil
	case FieldAssessmentQuestions:
		var questions []entities.AssessmentQuestion
		if err := json.Unmarshal(raw, &questions); err != nil {
			return nil, fmt.Errorf("%w: %s must be a list of questions", usecaseErrors.ErrInvalidInput, field)
		}
		return questions, nil
	}
	return nil, usecaseErrors.ErrUnknownField
}
