package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ContactConversation is the stored transcript of a contact with its snippet breakdown
type ContactConversation struct {
	ContactID        string                       `json:"contact_id" gorm:"primaryKey;type:varchar(255)"`
	Transcript       string                       `json:"transcript" gorm:"type:text"`
	SnippetsMetadata datatypes.JSONSlice[Snippet] `json:"snippets_metadata" gorm:"type:jsonb"`
	CreatedAt        time.Time                    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time                    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ContactConversation) TableName() string {
	return "contact_conversations"
}

// Snippets returns the stored snippets, deriving them from the transcript
// when no breakdown was stored
func (c *ContactConversation) Snippets() []Snippet {
	if len(c.SnippetsMetadata) > 0 {
		return append([]Snippet{}, c.SnippetsMetadata...)
	}
	return SnippetsFromTranscript(c.ContactID, c.Transcript)
}
