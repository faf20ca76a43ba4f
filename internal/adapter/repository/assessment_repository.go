package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
)

// assessmentRepository implements the AssessmentRepository interface
type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) repositories.AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Upsert creates or replaces the assessment of a contact
func (r *assessmentRepository) Upsert(ctx context.Context, details *entities.AssessmentDetails) error {
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "aws_ref_id"}},
			UpdateAll: true,
		}).
		Create(details).Error
	if err != nil {
		return fmt.Errorf("failed to upsert assessment details: %w", err)
	}
	return nil
}

// FindByAWSRefID retrieves the assessment of a contact
func (r *assessmentRepository) FindByAWSRefID(ctx context.Context, awsRefID string) (*entities.AssessmentDetails, error) {
	var details entities.AssessmentDetails
	err := conn(ctx, r.db).
		Where("aws_ref_id = ?", awsRefID).
		First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to find assessment details: %w", err)
	}
	return &details, nil
}

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) repositories.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Upsert creates or replaces the feedback of one evaluator on one contact
func (r *feedbackRepository) Upsert(ctx context.Context, feedback *entities.QualityAssessorFeedback) error {
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "contact_id"}, {Name: "evaluator"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"complaints_flag",
				"vulnerability_flag",
				"complaints_reasoning",
				"vulnerability_reasoning",
				"updated_at",
			}),
		}).
		Create(feedback).Error
	if err != nil {
		return fmt.Errorf("failed to upsert assessor feedback: %w", err)
	}
	return nil
}

// FindByContactID lists every evaluator's feedback on a contact
func (r *feedbackRepository) FindByContactID(ctx context.Context, contactID string) ([]*entities.QualityAssessorFeedback, error) {
	var feedback []*entities.QualityAssessorFeedback
	err := conn(ctx, r.db).
		Where("contact_id = ?", contactID).
		Order("updated_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assessor feedback: %w", err)
	}
	return feedback, nil
}
