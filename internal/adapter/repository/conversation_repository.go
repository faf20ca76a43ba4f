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

// conversationRepository implements the ConversationRepository interface
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) repositories.ConversationRepository {
	return &conversationRepository{db: db}
}

// FindByContactID retrieves the stored conversation of a contact
func (r *conversationRepository) FindByContactID(ctx context.Context, contactID string) (*entities.ContactConversation, error) {
	var conversation entities.ContactConversation
	err := conn(ctx, r.db).
		Where("contact_id = ?", contactID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return &conversation, nil
}

// Upsert creates or replaces the conversation of a contact
func (r *conversationRepository) Upsert(ctx context.Context, conversation *entities.ContactConversation) error {
	err := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contact_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"transcript", "snippets_metadata", "updated_at"}),
		}).
		Create(conversation).Error
	if err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}
	return nil
}

// uploadRepository implements the UploadRepository interface
type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new upload repository
func NewUploadRepository(db *gorm.DB) repositories.UploadRepository {
	return &uploadRepository{db: db}
}

// CreateBatch stores upload records in one transaction
func (r *uploadRepository) CreateBatch(ctx context.Context, uploads []*entities.UploadDetail) error {
	if len(uploads) == 0 {
		return nil
	}
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(uploads, 100).Error; err != nil {
			return fmt.Errorf("failed to create upload details: %w", err)
		}
		return nil
	})
}

// ListContacts lists uploaded contacts joined with their conversation, newest first
func (r *uploadRepository) ListContacts(ctx context.Context, limit, offset int) ([]*entities.ContactListItem, error) {
	var items []*entities.ContactListItem
	query := conn(ctx, r.db).
		Table("upload_details AS u").
		Select("u.contact_id, u.evaluator, u.upload_timestamp, c.transcript, c.updated_at").
		Joins("LEFT JOIN contact_conversations AS c ON c.contact_id = u.contact_id").
		Order("u.upload_timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return items, nil
}
