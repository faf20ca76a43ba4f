package repositories

import (
	"context"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// ConversationRepository defines persistence operations for contact transcripts
type ConversationRepository interface {
	// FindByContactID retrieves the stored conversation of a contact
	FindByContactID(ctx context.Context, contactID string) (*entities.ContactConversation, error)

	// Upsert creates or replaces the conversation of a contact
	Upsert(ctx context.Context, conversation *entities.ContactConversation) error
}

// UploadRepository defines persistence operations for uploaded contacts
type UploadRepository interface {
	// CreateBatch stores upload records in one transaction
	CreateBatch(ctx context.Context, uploads []*entities.UploadDetail) error

	// ListContacts lists uploaded contacts, newest first
	ListContacts(ctx context.Context, limit, offset int) ([]*entities.ContactListItem, error)
}
