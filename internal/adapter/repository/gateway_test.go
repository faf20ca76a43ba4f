package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/datatypes"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

type memoryAssessments struct {
	mu   sync.Mutex
	rows map[string]*entities.AssessmentDetails
	err  error
}

func (m *memoryAssessments) Upsert(_ context.Context, d *entities.AssessmentDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[d.AWSRefID] = d
	return nil
}

func (m *memoryAssessments) FindByAWSRefID(_ context.Context, id string) (*entities.AssessmentDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.rows[id]
	if !ok {
		return nil, entities.ErrAssessmentNotFound
	}
	return d, nil
}

type memoryFeedback struct {
	rows map[[2]string]*entities.QualityAssessorFeedback
}

func (m *memoryFeedback) Upsert(_ context.Context, f *entities.QualityAssessorFeedback) error {
	m.rows[[2]string{f.ContactID, f.Evaluator}] = f
	return nil
}

func (m *memoryFeedback) FindByContactID(_ context.Context, contactID string) ([]*entities.QualityAssessorFeedback, error) {
	var out []*entities.QualityAssessorFeedback
	for k, f := range m.rows {
		if k[0] == contactID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memoryConversations struct {
	rows map[string]*entities.ContactConversation
	err  error
	inTx bool
}

func (m *memoryConversations) FindByContactID(_ context.Context, contactID string) (*entities.ContactConversation, error) {
	c, ok := m.rows[contactID]
	if !ok {
		return nil, entities.ErrConversationNotFound
	}
	return c, nil
}

func (m *memoryConversations) Upsert(ctx context.Context, c *entities.ContactConversation) error {
	m.inTx = ctx.Value(memoryTxKey{}) != nil
	if m.err != nil {
		return m.err
	}
	m.rows[c.ContactID] = c
	return nil
}

type memoryTxKey struct{}

// memoryTransactor restores the assessment and conversation tables when fn
// fails
type memoryTransactor struct {
	assessments   *memoryAssessments
	conversations *memoryConversations
	calls         int
}

func (m *memoryTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	assessments := make(map[string]*entities.AssessmentDetails, len(m.assessments.rows))
	for k, v := range m.assessments.rows {
		assessments[k] = v
	}
	conversations := make(map[string]*entities.ContactConversation, len(m.conversations.rows))
	for k, v := range m.conversations.rows {
		conversations[k] = v
	}

	if err := fn(context.WithValue(ctx, memoryTxKey{}, m)); err != nil {
		m.assessments.rows = assessments
		m.conversations.rows = conversations
		return err
	}
	return nil
}

type memoryUploads struct {
	rows []*entities.UploadDetail
}

func (m *memoryUploads) CreateBatch(_ context.Context, uploads []*entities.UploadDetail) error {
	m.rows = append(m.rows, uploads...)
	return nil
}

func (m *memoryUploads) ListContacts(_ context.Context, limit, offset int) ([]*entities.ContactListItem, error) {
	items := make([]*entities.ContactListItem, 0, len(m.rows))
	for _, r := range m.rows {
		items = append(items, &entities.ContactListItem{ContactID: r.ContactID, Evaluator: r.Evaluator})
	}
	if limit > 0 {
		if offset > len(items) {
			offset = len(items)
		}
		items = items[offset:min(offset+limit, len(items))]
	}
	return items, nil
}

type gatewayFixture struct {
	gateway       *Gateway
	tx            *memoryTransactor
	assessments   *memoryAssessments
	feedback      *memoryFeedback
	conversations *memoryConversations
	uploads       *memoryUploads
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	f := &gatewayFixture{
		assessments:   &memoryAssessments{rows: map[string]*entities.AssessmentDetails{}},
		feedback:      &memoryFeedback{rows: map[[2]string]*entities.QualityAssessorFeedback{}},
		conversations: &memoryConversations{rows: map[string]*entities.ContactConversation{}},
		uploads:       &memoryUploads{},
	}
	f.tx = &memoryTransactor{assessments: f.assessments, conversations: f.conversations}
	f.gateway = NewGateway(f.tx, f.assessments, f.feedback, f.conversations, f.uploads, zaptest.NewLogger(t))
	return f
}

func TestGateway_SaveAssessmentDetails(t *testing.T) {
	f := newGatewayFixture(t)
	ctx := context.Background()

	err := f.gateway.SaveAssessmentDetails(ctx, &entities.SaveAssessmentPayload{
		AWSRefID:           "C1",
		TracksmartID:       "E1",
		Transcript:         "Agent: hello\nCustomer: hi",
		SpecialServiceTeam: true,
		Complaints:         &entities.FlagAssessment{Flag: true, Reasoning: "upset"},
	})
	require.NoError(t, err)

	row := f.assessments.rows["C1"]
	require.NotNil(t, row)
	assert.Equal(t, "E1", row.TracksmartID)
	assert.True(t, row.SpecialServiceTeamFlag)
	assert.True(t, row.ComplaintsAssessment)
	assert.True(t, row.Complaints)
	assert.Equal(t, "upset", row.ComplaintsAssessmentReasoning)
	assert.False(t, row.VulnerabilityAssessment)

	conv := f.conversations.rows["C1"]
	require.NotNil(t, conv)
	require.Len(t, conv.SnippetsMetadata, 2)
	assert.Equal(t, "hello", conv.SnippetsMetadata[0].Text)
	assert.Equal(t, entities.SpeakerCustomer, conv.SnippetsMetadata[1].Speaker)
}

func TestGateway_SaveAssessmentDetailsRequiresIDs(t *testing.T) {
	f := newGatewayFixture(t)

	err := f.gateway.SaveAssessmentDetails(context.Background(), &entities.SaveAssessmentPayload{AWSRefID: "C1"})
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
	assert.Empty(t, f.assessments.rows)
}

func TestGateway_SaveAssessmentDetailsRollsBackOnConversationFailure(t *testing.T) {
	f := newGatewayFixture(t)
	ctx := context.Background()
	f.assessments.rows["C0"] = &entities.AssessmentDetails{AWSRefID: "C0", TracksmartID: "E0"}
	f.conversations.err = errors.New("conversation write failed")

	err := f.gateway.SaveAssessmentDetails(ctx, &entities.SaveAssessmentPayload{
		AWSRefID:     "C1",
		TracksmartID: "E1",
		Transcript:   "Agent: hello",
	})
	require.ErrorContains(t, err, "conversation write failed")
	assert.Equal(t, 1, f.tx.calls)
	assert.True(t, f.conversations.inTx)
	assert.NotContains(t, f.assessments.rows, "C1", "assessment write is rolled back")
	assert.Contains(t, f.assessments.rows, "C0")
	assert.Empty(t, f.conversations.rows)

	f.conversations.err = nil
	require.NoError(t, f.gateway.SaveAssessmentDetails(ctx, &entities.SaveAssessmentPayload{
		AWSRefID:     "C1",
		TracksmartID: "E1",
		Transcript:   "Agent: hello",
	}))
	assert.Contains(t, f.assessments.rows, "C1")
	assert.Contains(t, f.conversations.rows, "C1")
}

func TestGateway_WithoutTransactor(t *testing.T) {
	f := newGatewayFixture(t)
	g := NewGateway(nil, f.assessments, f.feedback, f.conversations, f.uploads, zaptest.NewLogger(t))

	require.NoError(t, g.SaveAssessmentDetails(context.Background(), &entities.SaveAssessmentPayload{
		AWSRefID:     "C1",
		TracksmartID: "E1",
	}))
	assert.False(t, f.conversations.inTx)
	assert.Contains(t, f.conversations.rows, "C1")
}

func TestGateway_InvokeSaveReportsFailure(t *testing.T) {
	f := newGatewayFixture(t)
	f.assessments.err = errors.New("db down")

	res := f.gateway.Invoke(context.Background(), entities.OpSaveAssessmentDetails, map[string]any{
		"awsRefId":     "C1",
		"tracksmartId": "E1",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "db down")
}

func TestGateway_InvokeUnknownOperation(t *testing.T) {
	f := newGatewayFixture(t)

	res := f.gateway.Invoke(context.Background(), "drop-tables", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "unknown operation", res.Error)
}

func TestGateway_InvokeFormatTranscript(t *testing.T) {
	f := newGatewayFixture(t)

	res := f.gateway.Invoke(context.Background(), entities.OpFormatTranscript, map[string]string{"transcript": "hello\nhi there"})
	require.True(t, res.Success)
	assert.Equal(t, map[string]string{"formatted_transcript": "Agent: hello\nCustomer: hi there"}, res.Data)

	res = f.gateway.Invoke(context.Background(), entities.OpFormatTranscript, json.RawMessage(`{"transcript":"  "}`))
	assert.False(t, res.Success)
}

func TestGateway_InvokeFeedback(t *testing.T) {
	f := newGatewayFixture(t)
	ctx := context.Background()

	res := f.gateway.Invoke(ctx, entities.OpQAFeedback, json.RawMessage(`{"contact_id":"C1","evaluator":"E1","complaints_flag":true}`))
	require.True(t, res.Success)
	res = f.gateway.Invoke(ctx, entities.OpQAFeedback, &entities.QualityAssessorFeedback{ContactID: "C1", Evaluator: "E1", VulnerabilityFlag: true})
	require.True(t, res.Success)

	require.Len(t, f.feedback.rows, 1)
	stored := f.feedback.rows[[2]string{"C1", "E1"}]
	assert.False(t, stored.ComplaintsFlag)
	assert.True(t, stored.VulnerabilityFlag)

	res = f.gateway.Invoke(ctx, entities.OpQAFeedback, map[string]any{"contact_id": "C1"})
	assert.False(t, res.Success)
}

func TestGateway_InvokeSnippets(t *testing.T) {
	f := newGatewayFixture(t)
	ctx := context.Background()
	f.conversations.rows["C1"] = &entities.ContactConversation{
		ContactID: "C1",
		SnippetsMetadata: datatypes.NewJSONSlice([]entities.Snippet{
			{ID: "s1", Speaker: entities.SpeakerAgent, Text: "hello"},
			{ID: "s2", Speaker: entities.SpeakerCustomer, Text: "hi"},
			{ID: "s3", Speaker: entities.SpeakerAgent, Text: "bye"},
		}),
	}

	res := f.gateway.Invoke(ctx, entities.OpSnippets, SnippetsRequest{ContactID: "C1", IDs: []string{"s3", "s1", "nope"}})
	require.True(t, res.Success)
	snippets := res.Data.([]entities.Snippet)
	require.Len(t, snippets, 2)
	assert.Equal(t, "s1", snippets[0].ID, "stored order is kept")
	assert.Equal(t, "s3", snippets[1].ID)

	all, err := f.gateway.Snippets(ctx, "C1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.gateway.Snippets(ctx, "C404")
	assert.ErrorIs(t, err, entities.ErrConversationNotFound)
}

func TestGateway_SnippetsFallBackToTranscript(t *testing.T) {
	f := newGatewayFixture(t)
	f.conversations.rows["C1"] = &entities.ContactConversation{ContactID: "C1", Transcript: "Agent: a\nCustomer: b"}

	snippets, err := f.gateway.Snippets(context.Background(), "C1")
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "b", snippets[1].Text)
}

func TestGateway_InvokeUploadDetails(t *testing.T) {
	f := newGatewayFixture(t)
	ctx := context.Background()

	res := f.gateway.Invoke(ctx, entities.OpUploadDetails, json.RawMessage(`{"data":[
		{"contact_id":"C1","evaluator":"E1","admin_id":null},
		{"contact_id":"","evaluator":"E2"},
		{"contact_id":"C3","evaluator":"E3"}
	]}`))
	require.True(t, res.Success)
	assert.Equal(t, map[string]int{"count": 2}, res.Data)
	require.Len(t, f.uploads.rows, 2)
	assert.Nil(t, f.uploads.rows[0].AdminID)

	res = f.gateway.Invoke(ctx, entities.OpUploadDetails, map[string]any{})
	require.True(t, res.Success)
	assert.Len(t, res.Data.([]*entities.ContactListItem), 2, "an empty upload lists the contacts")

	res = f.gateway.Invoke(ctx, entities.OpListContacts, ListContactsRequest{Limit: 1, Offset: 1})
	require.True(t, res.Success)
	items := res.Data.([]*entities.ContactListItem)
	require.Len(t, items, 1)
	assert.Equal(t, "C3", items[0].ContactID)

	res = f.gateway.Invoke(ctx, entities.OpUploadDetails, UploadDetailsRequest{Data: []*entities.UploadDetail{{ContactID: "C9"}}})
	assert.False(t, res.Success)
}

func TestFormatTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "alternates speakers", in: "hi\nhello\nhow can I help", want: "Agent: hi\nCustomer: hello\nAgent: how can I help"},
		{name: "keeps labelled lines", in: "Customer: hi\nthanks", want: "Customer: hi\nCustomer: thanks"},
		{name: "drops blank lines", in: "hi\n\n  \nhello\r\n", want: "Agent: hi\nCustomer: hello"},
		{name: "trims", in: "  hi  ", want: "Agent: hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTranscript(tt.in))
		})
	}
}
