package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
)

// Form errors
var (
	ErrMissingTranscript      = errors.New("missing transcript")
	ErrMissingContactID       = errors.New("missing contact id")
	ErrMissingEvaluator       = errors.New("missing evaluator")
	ErrUnknownField           = errors.New("unknown form field")
	ErrInvalidSpecialService  = errors.New("special service team must be yes or no")
	ErrSubmitInProgress       = errors.New("submit already in progress")
	ErrNoPendingContactChange = errors.New("no pending contact id change")
	ErrSaveFailed             = errors.New("failed to save assessment details")
)

// Generation errors
var (
	ErrGenerationFailed      = errors.New("ai generation failed")
	ErrStaleGeneration       = errors.New("generation result is stale")
	ErrGenerationRunning     = errors.New("generation already running")
	ErrUnformattedTranscript = errors.New("transcript is not formatted")
	ErrFormatFailed          = errors.New("transcript formatting failed")
	ErrTranscriptTooLarge    = errors.New("transcript file too large")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrStorageDisabled       = errors.New("transcript storage is not configured")
	ErrStorageFailed         = errors.New("failed to store transcript")
)

// Review errors
var (
	ErrEmptySelection  = errors.New("select at least one snippet")
	ErrBlankText       = errors.New("text must not be blank")
	ErrInvalidEmotion  = errors.New("emotion must be Sarcasm, Panic or Anxiety")
	ErrUnknownDialog   = errors.New("unknown dialog")
	ErrSnippetNotFound = errors.New("snippet not found")
)

// Contact errors
var (
	ErrNoValidRows     = errors.New("no valid data found in file")
	ErrMissingColumns  = errors.New("CSV must contain 'contactId' and 'evaluator' columns")
	ErrGatewayRejected = errors.New("persistence gateway rejected the request")
)
