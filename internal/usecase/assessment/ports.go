package assessment

import (
	"context"
	"io"

	"github.com/johnquangdev/contact-qa/pkg/ai"
)

// AIGateway generates summaries and assessments of a conversation
type AIGateway interface {
	Summarize(ctx context.Context, conversation string) (*ai.Summary, error)
	Assess(ctx context.Context, conversation string) (*ai.ContactAssessment, error)
}

// TranscriptStore keeps uploaded transcript files
type TranscriptStore interface {
	UploadTranscript(ctx context.Context, objectName string, r io.Reader, size int64) (string, error)
}
