package repositories

import (
	"context"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// PersistenceGateway is the durable storage service the dashboard talks to.
// Invoke never returns a Go error: failures are reported in the result.
type PersistenceGateway interface {
	Invoke(ctx context.Context, operation string, payload any) entities.InvokeResult
	SaveAssessmentDetails(ctx context.Context, payload *entities.SaveAssessmentPayload) error
}

// Transactor runs fn inside one database transaction. Repository calls made
// with the context handed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
