package entities

import (
	"time"

	"gorm.io/datatypes"
)

// FlagAssessment is one yes/no judgement with its reasoning and evidence
type FlagAssessment struct {
	Flag      bool     `json:"flag"`
	Reasons   []string `json:"reasons,omitempty"`
	Other     string   `json:"other,omitempty"`
	Reasoning string   `json:"reasoning,omitempty"`
	Evidence  string   `json:"evidence,omitempty"`
}

// ContactAssessment is the AI judgement of a conversation
type ContactAssessment struct {
	FinancialVulnerability bool   `json:"financial_vulnerability"`
	VulnerabilityReason    string `json:"vulnerability_reason"`
	VulnerabilitySnippet   string `json:"vulnerability_snippet"`
	Complaint              bool   `json:"complaint"`
	ComplaintReason        string `json:"complaint_reason"`
	ComplaintSnippet       string `json:"complaint_snippet"`
}

// SaveAssessmentPayload is what the form submits to the persistence gateway
type SaveAssessmentPayload struct {
	AWSRefID            string               `json:"awsRefId"`
	TracksmartID        string               `json:"tracksmartId"`
	Transcript          string               `json:"transcript"`
	SpecialServiceTeam  bool                 `json:"specialServiceTeam"`
	OverallSummary      string               `json:"overallSummary,omitempty"`
	DetailedSummary     []string             `json:"detailedSummary,omitempty"`
	AssessmentQuestions []AssessmentQuestion `json:"assessmentQuestions,omitempty"`
	Complaints          *FlagAssessment      `json:"complaints,omitempty"`
	Vulnerabilities     *FlagAssessment      `json:"vulnerabilities,omitempty"`
}

// AssessmentDetails is the stored assessment of one contact, keyed by AWS ref id
type AssessmentDetails struct {
	AWSRefID               string `json:"aws_ref_id" gorm:"column:aws_ref_id;primaryKey;type:varchar(255)"`
	TracksmartID           string `json:"tracksmart_id" gorm:"type:varchar(255)"`
	SpecialServiceTeamFlag bool   `json:"special_service_team_flag" gorm:"default:false"`

	Transcript      string                      `json:"transcript" gorm:"type:text"`
	OverallSummary  string                      `json:"overall_summary" gorm:"type:text"`
	DetailedSummary datatypes.JSONSlice[string] `json:"detailed_summary" gorm:"type:jsonb"`

	PhysicalDisabilityStatus bool `json:"physical_disability_status" gorm:"default:false"`
	ComplaintsAssessment     bool `json:"complaints_assessment" gorm:"default:false"`
	VulnerabilityAssessment  bool `json:"vulnerability_assessment" gorm:"default:false"`

	Complaints                    bool                        `json:"complaints" gorm:"default:false"`
	ComplaintsReason              datatypes.JSONSlice[string] `json:"complaints_reason" gorm:"type:jsonb"`
	ComplaintsReasonOther         string                      `json:"complaints_reason_other" gorm:"type:text"`
	ComplaintsAssessmentReasoning string                      `json:"complaints_assessment_reasoning" gorm:"type:text"`
	ComplaintsReviewEvidence      string                      `json:"complaints_review_evidence" gorm:"type:text"`

	Vulnerability                    bool                        `json:"vulnerability" gorm:"default:false"`
	VulnerabilityCategories          datatypes.JSONSlice[string] `json:"vulnerability_categories" gorm:"type:jsonb"`
	VulnerabilityCategoriesOther     string                      `json:"vulnerability_categories_other" gorm:"type:text"`
	VulnerabilityAssessmentReasoning string                      `json:"vulnerability_assessment_reasoning" gorm:"type:text"`
	VulnerabilityReviewEvidence      string                      `json:"vulnerability_review_evidence" gorm:"type:text"`

	AssessmentQuestions datatypes.JSONSlice[AssessmentQuestion] `json:"assessment_questions" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AssessmentDetails) TableName() string {
	return "assessment_details"
}

// NewAssessmentDetails maps a submitted payload onto a storable row
func NewAssessmentDetails(p *SaveAssessmentPayload) *AssessmentDetails {
	d := &AssessmentDetails{
		AWSRefID:                p.AWSRefID,
		TracksmartID:            p.TracksmartID,
		SpecialServiceTeamFlag:  p.SpecialServiceTeam,
		Transcript:              p.Transcript,
		OverallSummary:          p.OverallSummary,
		DetailedSummary:         datatypes.NewJSONSlice(nonNil(p.DetailedSummary)),
		AssessmentQuestions:     datatypes.NewJSONSlice(append([]AssessmentQuestion{}, p.AssessmentQuestions...)),
		ComplaintsReason:        datatypes.NewJSONSlice([]string{}),
		VulnerabilityCategories: datatypes.NewJSONSlice([]string{}),
	}
	if c := p.Complaints; c != nil {
		d.ComplaintsAssessment = true
		d.Complaints = c.Flag
		d.ComplaintsReason = datatypes.NewJSONSlice(nonNil(c.Reasons))
		d.ComplaintsReasonOther = c.Other
		d.ComplaintsAssessmentReasoning = c.Reasoning
		d.ComplaintsReviewEvidence = c.Evidence
	}
	if v := p.Vulnerabilities; v != nil {
		d.VulnerabilityAssessment = true
		d.Vulnerability = v.Flag
		d.VulnerabilityCategories = datatypes.NewJSONSlice(nonNil(v.Reasons))
		d.VulnerabilityCategoriesOther = v.Other
		d.VulnerabilityAssessmentReasoning = v.Reasoning
		d.VulnerabilityReviewEvidence = v.Evidence
	}
	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
