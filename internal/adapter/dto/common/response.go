package common

import "github.com/johnquangdev/contact-qa/internal/domain/entities"

// NoticeResponse is a toast-style message shown next to a result
type NoticeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant" enums:"success,info,warning,destructive"`
}

// PaginationResponse represents offset pagination metadata
type PaginationResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Data       interface{}         `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// ToNotice maps a notice, keeping nil as nil
func ToNotice(n *entities.Notice) *NoticeResponse {
	if n == nil {
		return nil
	}
	return &NoticeResponse{
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
	}
}
