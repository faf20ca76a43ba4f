package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
)

// Gateway implements the PersistenceGateway over the gorm repositories
type Gateway struct {
	tx            repositories.Transactor
	assessments   repositories.AssessmentRepository
	feedback      repositories.FeedbackRepository
	conversations repositories.ConversationRepository
	uploads       repositories.UploadRepository
	logger        *zap.Logger
}

// NewGateway creates a new persistence gateway. A nil transactor runs
// multi-table writes without a transaction.
func NewGateway(
	tx repositories.Transactor,
	assessments repositories.AssessmentRepository,
	feedback repositories.FeedbackRepository,
	conversations repositories.ConversationRepository,
	uploads repositories.UploadRepository,
	logger *zap.Logger,
) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tx == nil {
		tx = noTransaction{}
	}
	return &Gateway{
		tx:            tx,
		assessments:   assessments,
		feedback:      feedback,
		conversations: conversations,
		uploads:       uploads,
		logger:        logger,
	}
}

var _ repositories.PersistenceGateway = (*Gateway)(nil)

// SnippetsRequest selects stored snippets of a contact. An empty id list
// selects all of them.
type SnippetsRequest struct {
	ContactID string   `json:"contactId"`
	IDs       []string `json:"ids,omitempty"`
}

// UploadDetailsRequest carries uploaded contact rows. Without rows the
// operation lists the uploaded contacts instead.
type UploadDetailsRequest struct {
	Data []*entities.UploadDetail `json:"data"`
}

// ListContactsRequest pages through uploaded contacts
type ListContactsRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// FormatTranscriptRequest carries a raw transcript
type FormatTranscriptRequest struct {
	Transcript string `json:"transcript"`
}

// Invoke runs a named operation. Failures are reported in the result.
func (g *Gateway) Invoke(ctx context.Context, operation string, payload any) entities.InvokeResult {
	data, err := g.dispatch(ctx, operation, payload)
	if err != nil {
		g.logger.Error("Persistence gateway operation failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return entities.Failed(err)
	}
	return entities.Succeeded(data)
}

func (g *Gateway) dispatch(ctx context.Context, operation string, payload any) (any, error) {
	switch operation {
	case entities.OpSaveAssessmentDetails:
		req, err := decodePayload[entities.SaveAssessmentPayload](payload)
		if err != nil {
			return nil, err
		}
		if err := g.SaveAssessmentDetails(ctx, req); err != nil {
			return nil, err
		}
		return map[string]string{"message": "Assessment details saved successfully"}, nil

	case entities.OpQAFeedback:
		req, err := decodePayload[entities.QualityAssessorFeedback](payload)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.ContactID) == "" || strings.TrimSpace(req.Evaluator) == "" {
			return nil, fmt.Errorf("%w: contact_id and evaluator are required", entities.ErrInvalidRequest)
		}
		if err := g.feedback.Upsert(ctx, req); err != nil {
			return nil, err
		}
		return req, nil

	case entities.OpSnippets:
		req, err := decodePayload[SnippetsRequest](payload)
		if err != nil {
			return nil, err
		}
		return g.Snippets(ctx, req.ContactID, req.IDs...)

	case entities.OpUploadDetails:
		req, err := decodePayload[UploadDetailsRequest](payload)
		if err != nil {
			return nil, err
		}
		if len(req.Data) == 0 {
			return g.uploads.ListContacts(ctx, 0, 0)
		}
		rows := make([]*entities.UploadDetail, 0, len(req.Data))
		for _, row := range req.Data {
			if row == nil || strings.TrimSpace(row.ContactID) == "" || strings.TrimSpace(row.Evaluator) == "" {
				continue
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: no valid rows", entities.ErrInvalidRequest)
		}
		if err := g.uploads.CreateBatch(ctx, rows); err != nil {
			return nil, err
		}
		return map[string]int{"count": len(rows)}, nil

	case entities.OpListContacts:
		req, err := decodePayload[ListContactsRequest](payload)
		if err != nil {
			return nil, err
		}
		return g.uploads.ListContacts(ctx, req.Limit, req.Offset)

	case entities.OpFormatTranscript:
		req, err := decodePayload[FormatTranscriptRequest](payload)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.Transcript) == "" {
			return nil, fmt.Errorf("%w: transcript is required", entities.ErrInvalidRequest)
		}
		return map[string]string{"formatted_transcript": FormatTranscript(req.Transcript)}, nil
	}
	return nil, entities.ErrUnknownOperation
}

// SaveAssessmentDetails stores a submitted assessment and the conversation
// it was made on in one transaction
func (g *Gateway) SaveAssessmentDetails(ctx context.Context, payload *entities.SaveAssessmentPayload) error {
	if payload == nil || strings.TrimSpace(payload.AWSRefID) == "" || strings.TrimSpace(payload.TracksmartID) == "" {
		return fmt.Errorf("%w: awsRefId and tracksmartId are required", entities.ErrInvalidRequest)
	}

	conversation := &entities.ContactConversation{
		ContactID:        payload.AWSRefID,
		Transcript:       payload.Transcript,
		SnippetsMetadata: datatypes.NewJSONSlice(entities.SnippetsFromTranscript(payload.AWSRefID, payload.Transcript)),
	}
	err := g.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := g.assessments.Upsert(ctx, entities.NewAssessmentDetails(payload)); err != nil {
			return err
		}
		return g.conversations.Upsert(ctx, conversation)
	})
	if err != nil {
		return err
	}

	g.logger.Info("Assessment details stored",
		zap.String("contact_id", payload.AWSRefID),
		zap.Int("snippets", len(conversation.SnippetsMetadata)),
	)
	return nil
}

// Snippets returns the stored snippets of a contact, optionally narrowed
// to the given ids in stored order
func (g *Gateway) Snippets(ctx context.Context, contactID string, ids ...string) ([]entities.Snippet, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("%w: contactId is required", entities.ErrInvalidRequest)
	}
	conversation, err := g.conversations.FindByContactID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	snippets := conversation.Snippets()
	if len(ids) == 0 {
		return snippets, nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]entities.Snippet, 0, len(ids))
	for _, s := range snippets {
		if _, ok := wanted[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// FormatTranscript prefixes every non-blank line with a speaker, alternating
// agent and customer. Lines that already name a speaker are kept as they are.
func FormatTranscript(transcript string) string {
	lines := make([]string, 0)
	for _, line := range strings.Split(strings.ReplaceAll(transcript, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, entities.SpeakerAgent+":") && !strings.HasPrefix(line, entities.SpeakerCustomer+":") {
			line = entities.SpeakerForIndex(len(lines)) + ": " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// decodePayload accepts the request type itself, raw JSON, or any value that
// marshals into it
func decodePayload[T any](payload any) (*T, error) {
	var raw []byte
	switch p := payload.(type) {
	case *T:
		if p == nil {
			return nil, fmt.Errorf("%w: empty payload", entities.ErrInvalidRequest)
		}
		return p, nil
	case T:
		return &p, nil
	case json.RawMessage:
		raw = p
	case []byte:
		raw = p
	case nil:
		raw = []byte("{}")
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
		}
		raw = b
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
	}
	return &out, nil
}
