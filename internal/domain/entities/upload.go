package entities

import "time"

// UploadDetail records a contact handed to an evaluator for assessment
type UploadDetail struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ContactID          string    `json:"contact_id" gorm:"type:varchar(255);not null;index"`
	Evaluator          string    `json:"evaluator" gorm:"type:varchar(255)"`
	Transcript         string    `json:"transcript" gorm:"type:text"`
	AdminID            *string   `json:"admin_id,omitempty" gorm:"type:varchar(255)"`
	SpecialServiceTeam bool      `json:"special_service_team" gorm:"default:false"`
	UploadTimestamp    time.Time `json:"upload_timestamp" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (UploadDetail) TableName() string {
	return "upload_details"
}

// ContactListItem is one row of the contacts overview
type ContactListItem struct {
	ContactID       string     `json:"contact_id"`
	Evaluator       string     `json:"evaluator"`
	UploadTimestamp *time.Time `json:"upload_timestamp"`
	Transcript      *string    `json:"transcript"`
	UpdatedAt       *time.Time `json:"updated_at"`
}
