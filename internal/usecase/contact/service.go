package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// Service defines the interface for the contact use case
type Service interface {
	// ListContacts lists uploaded contacts, newest first
	ListContacts(ctx context.Context, limit, offset int) ([]*entities.ContactListItem, error)

	// UploadContacts parses a CSV or JSON file of contacts and stores its rows
	UploadContacts(ctx context.Context, input UploadInput) (int, error)

	// GetAssessment returns the saved assessment of a contact with its feedback
	GetAssessment(ctx context.Context, contactID string) (*AssessmentView, error)

	// SaveFeedback stores one evaluator's verdict on a contact
	SaveFeedback(ctx context.Context, feedback *entities.QualityAssessorFeedback) (*entities.QualityAssessorFeedback, error)

	// Snippets returns every stored snippet of a contact
	Snippets(ctx context.Context, contactID string) ([]entities.Snippet, error)

	// FindSnippets returns the stored snippets of a contact narrowed to ids
	FindSnippets(ctx context.Context, contactID string, ids []string) ([]entities.Snippet, error)
}

// UploadInput is a bulk contact file
type UploadInput struct {
	Filename string
	Reader   io.Reader
	AdminID  *string
}

// AssessmentView is the results view of one contact
type AssessmentView struct {
	Details  *entities.AssessmentDetails
	Feedback []*entities.QualityAssessorFeedback
}

// ContactService implements Service over the persistence gateway
type ContactService struct {
	gateway     repositories.PersistenceGateway
	assessments repositories.AssessmentRepository
	feedback    repositories.FeedbackRepository
	logger      *zap.Logger
}

var _ Service = (*ContactService)(nil)

// NewContactService creates a new contact service
func NewContactService(
	gateway repositories.PersistenceGateway,
	assessments repositories.AssessmentRepository,
	feedback repositories.FeedbackRepository,
	logger *zap.Logger,
) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		gateway:     gateway,
		assessments: assessments,
		feedback:    feedback,
		logger:      logger,
	}
}

// ListContacts lists uploaded contacts
func (s *ContactService) ListContacts(ctx context.Context, limit, offset int) ([]*entities.ContactListItem, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", usecaseErrors.ErrInvalidInput)
	}
	res := s.gateway.Invoke(ctx, entities.OpListContacts, map[string]int{"limit": limit, "offset": offset})
	if !res.Success {
		return nil, resultError(res)
	}
	items, _ := res.Data.([]*entities.ContactListItem)
	if items == nil {
		items = []*entities.ContactListItem{}
	}
	return items, nil
}

// UploadContacts parses the file and stores its rows in one batch
func (s *ContactService) UploadContacts(ctx context.Context, input UploadInput) (int, error) {
	rows, err := ParseUpload(input.Filename, input.Reader)
	if err != nil {
		return 0, err
	}

	details := make([]*entities.UploadDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entities.UploadDetail{
			ContactID: row.ContactID,
			Evaluator: row.Evaluator,
			AdminID:   input.AdminID,
		})
	}

	res := s.gateway.Invoke(ctx, entities.OpUploadDetails, map[string]any{"data": details})
	if !res.Success {
		return 0, resultError(res)
	}

	s.logger.Info("Contacts uploaded",
		zap.String("file", input.Filename),
		zap.Int("records", len(details)),
	)
	return len(details), nil
}

// GetAssessment returns the saved assessment with every evaluator's feedback
func (s *ContactService) GetAssessment(ctx context.Context, contactID string) (*AssessmentView, error) {
	contactID = strings.TrimSpace(contactID)
	if contactID == "" {
		return nil, usecaseErrors.ErrMissingContactID
	}
	details, err := s.assessments.FindByAWSRefID(ctx, contactID)
	if err != nil {
		if errors.Is(err, entities.ErrAssessmentNotFound) {
			return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrNotFound, err)
		}
		return nil, err
	}
	feedback, err := s.feedback.FindByContactID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		feedback = []*entities.QualityAssessorFeedback{}
	}
	return &AssessmentView{Details: details, Feedback: feedback}, nil
}

// SaveFeedback stores one evaluator's verdict on a contact
func (s *ContactService) SaveFeedback(ctx context.Context, feedback *entities.QualityAssessorFeedback) (*entities.QualityAssessorFeedback, error) {
	if strings.TrimSpace(feedback.ContactID) == "" {
		return nil, usecaseErrors.ErrMissingContactID
	}
	if strings.TrimSpace(feedback.Evaluator) == "" {
		return nil, usecaseErrors.ErrMissingEvaluator
	}
	res := s.gateway.Invoke(ctx, entities.OpQAFeedback, feedback)
	if !res.Success {
		return nil, resultError(res)
	}
	return feedback, nil
}

// Snippets returns every stored snippet of a contact
func (s *ContactService) Snippets(ctx context.Context, contactID string) ([]entities.Snippet, error) {
	return s.FindSnippets(ctx, contactID, nil)
}

// FindSnippets returns the stored snippets of a contact narrowed to ids
func (s *ContactService) FindSnippets(ctx context.Context, contactID string, ids []string) ([]entities.Snippet, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, usecaseErrors.ErrMissingContactID
	}
	res := s.gateway.Invoke(ctx, entities.OpSnippets, map[string]any{"contactId": contactID, "ids": ids})
	if !res.Success {
		return nil, resultError(res)
	}
	snippets, _ := res.Data.([]entities.Snippet)
	if snippets == nil {
		snippets = []entities.Snippet{}
	}
	return snippets, nil
}

// knownFailures maps gateway error messages back to the errors they came from
var knownFailures = []struct {
	domain error
	mapped error
}{
	{entities.ErrConversationNotFound, usecaseErrors.ErrNotFound},
	{entities.ErrAssessmentNotFound, usecaseErrors.ErrNotFound},
	{entities.ErrContactNotFound, usecaseErrors.ErrNotFound},
	{entities.ErrInvalidRequest, usecaseErrors.ErrInvalidInput},
}

func resultError(res entities.InvokeResult) error {
	for _, f := range knownFailures {
		if strings.HasPrefix(res.Error, f.domain.Error()) {
			return fmt.Errorf("%w: %w%s", f.mapped, f.domain, strings.TrimPrefix(res.Error, f.domain.Error()))
		}
	}
	return fmt.Errorf("%w: %s", usecaseErrors.ErrGatewayRejected, res.Error)
}
