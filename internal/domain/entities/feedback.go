package entities

import "time"

// QualityAssessorFeedback is the manual verdict of one evaluator on one contact
type QualityAssessorFeedback struct {
	ContactID              string    `json:"contact_id" gorm:"primaryKey;type:varchar(255)"`
	Evaluator              string    `json:"evaluator" gorm:"primaryKey;type:varchar(255)"`
	ComplaintsFlag         bool      `json:"complaints_flag" gorm:"default:false"`
	VulnerabilityFlag      bool      `json:"vulnerability_flag" gorm:"default:false"`
	ComplaintsReasoning    string    `json:"complaints_reasoning" gorm:"type:text"`
	VulnerabilityReasoning string    `json:"vulnerability_reasoning" gorm:"type:text"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (QualityAssessorFeedback) TableName() string {
	return "quality_assessor_feedback"
}
