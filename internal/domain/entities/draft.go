package entities

// SpecialService is the "handled by the special service team" answer.
// The empty value means unset and is never handed to consumers.
type SpecialService string

const (
	SpecialServiceUnset SpecialService = ""
	SpecialServiceYes   SpecialService = "yes"
	SpecialServiceNo    SpecialService = "no"
)

// IsValid reports whether s is a concrete answer
func (s SpecialService) IsValid() bool {
	return s == SpecialServiceYes || s == SpecialServiceNo
}

// Bool converts the answer to the flag stored with an assessment
func (s SpecialService) Bool() bool {
	return s == SpecialServiceYes
}

// AssessmentQuestion pairs an AI assessment with the assessor's feedback on it
type AssessmentQuestion struct {
	ID               string `json:"id"`
	AIAssessment     string `json:"aiAssessment"`
	AssessorFeedback string `json:"assessorFeedback"`
}

// DraftFormData is the unsaved state of one contact assessment form
type DraftFormData struct {
	ContactID             string               `json:"contactId"`
	Evaluator             string               `json:"evaluator"`
	Transcript            string               `json:"transcript"`
	IsSpecialServiceTeam  SpecialService       `json:"isSpecialServiceTeam"`
	OverallSummary        string               `json:"overallSummary"`
	DetailedSummaryPoints []string             `json:"detailedSummaryPoints"`
	AssessmentQuestions   []AssessmentQuestion `json:"assessmentQuestions"`
}

// NewDraftFormData returns an all-default draft
func NewDraftFormData() DraftFormData {
	return DraftFormData{
		IsSpecialServiceTeam:  SpecialServiceNo,
		DetailedSummaryPoints: []string{},
		AssessmentQuestions:   []AssessmentQuestion{},
	}
}

// Normalize replaces absent values with their neutral defaults
func (d DraftFormData) Normalize() DraftFormData {
	if !d.IsSpecialServiceTeam.IsValid() {
		d.IsSpecialServiceTeam = SpecialServiceNo
	}
	if d.DetailedSummaryPoints == nil {
		d.DetailedSummaryPoints = []string{}
	}
	if d.AssessmentQuestions == nil {
		d.AssessmentQuestions = []AssessmentQuestion{}
	}
	return d
}

// Clone returns a deep copy so callers never share slices with the owner
func (d DraftFormData) Clone() DraftFormData {
	out := d
	out.DetailedSummaryPoints = append([]string{}, d.DetailedSummaryPoints...)
	out.AssessmentQuestions = append([]AssessmentQuestion{}, d.AssessmentQuestions...)
	return out
}
