package form

import (
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/common"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
)

// DraftResponse is a loaded draft with the warning raised while loading it
type DraftResponse struct {
	Draft  entities.DraftFormData `json:"draft"`
	Notice *common.NoticeResponse `json:"notice,omitempty"`
}

// StateResponse is the assessment form of the current session
type StateResponse struct {
	Form              entities.DraftFormData      `json:"form"`
	HasUnsavedChanges bool                        `json:"hasUnsavedChanges"`
	PendingContactID  *string                     `json:"pendingContactId,omitempty"`
	Assessment        *entities.ContactAssessment `json:"assessment,omitempty"`
	Generating        bool                        `json:"generating"`
	Submitting        bool                        `json:"submitting"`
}

// ResultResponse is the outcome of a form operation
type ResultResponse struct {
	State    StateResponse          `json:"state"`
	Notice   *common.NoticeResponse `json:"notice,omitempty"`
	Redirect string                 `json:"redirect,omitempty"`
}
