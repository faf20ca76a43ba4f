package entities

import "errors"

// Domain errors
var (
	// Contact errors
	ErrContactNotFound      = errors.New("contact not found")
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrConversationNotFound = errors.New("conversation not found")

	// Gateway errors
	ErrUnknownOperation = errors.New("unknown operation")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
