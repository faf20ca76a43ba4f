package repositories

import (
	"context"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// AssessmentRepository defines persistence operations for saved assessments
type AssessmentRepository interface {
	// Upsert creates or replaces the assessment of a contact by AWS ref id
	Upsert(ctx context.Context, details *entities.AssessmentDetails) error

	// FindByAWSRefID retrieves the assessment of a contact
	FindByAWSRefID(ctx context.Context, awsRefID string) (*entities.AssessmentDetails, error)
}

// FeedbackRepository defines persistence operations for assessor feedback
type FeedbackRepository interface {
	// Upsert creates or replaces the feedback of one evaluator on one contact
	Upsert(ctx context.Context, feedback *entities.QualityAssessorFeedback) error

	// FindByContactID lists every evaluator's feedback on a contact
	FindByContactID(ctx context.Context, contactID string) ([]*entities.QualityAssessorFeedback, error)
}
