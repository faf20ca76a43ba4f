package errors

// ErrorCode identifies an error class in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1004
	ErrorCode_CONFLICT          ErrorCode = 1005
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1006

	// Session
	ErrorCode_SESSION_INVALID ErrorCode = 2000

	// Assessment form
	ErrorCode_VALIDATION_FAILED         ErrorCode = 3000
	ErrorCode_SUBMIT_IN_PROGRESS        ErrorCode = 3001
	ErrorCode_NO_PENDING_CONTACT_CHANGE ErrorCode = 3002
	ErrorCode_ASSESSMENT_SAVE_FAILED    ErrorCode = 3003
	ErrorCode_UNKNOWN_FIELD             ErrorCode = 3004

	// AI gateway
	ErrorCode_AI_GENERATION_FAILED ErrorCode = 4000
	ErrorCode_AI_STALE_GENERATION  ErrorCode = 4001
	ErrorCode_AI_FORMAT_FAILED     ErrorCode = 4002

	// Review
	ErrorCode_REVIEW_INVALID_ACTION ErrorCode = 5000

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 6000
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 6002
	ErrorCode_INTEGRATION_UNAVAILABLE         ErrorCode = 6003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_CONFLICT:                        "CONFLICT",
	ErrorCode_PAYLOAD_TOO_LARGE:               "PAYLOAD_TOO_LARGE",
	ErrorCode_SESSION_INVALID:                 "SESSION_INVALID",
	ErrorCode_VALIDATION_FAILED:               "VALIDATION_FAILED",
	ErrorCode_SUBMIT_IN_PROGRESS:              "SUBMIT_IN_PROGRESS",
	ErrorCode_NO_PENDING_CONTACT_CHANGE:       "NO_PENDING_CONTACT_CHANGE",
	ErrorCode_ASSESSMENT_SAVE_FAILED:          "ASSESSMENT_SAVE_FAILED",
	ErrorCode_UNKNOWN_FIELD:                   "UNKNOWN_FIELD",
	ErrorCode_AI_GENERATION_FAILED:            "AI_GENERATION_FAILED",
	ErrorCode_AI_STALE_GENERATION:             "AI_STALE_GENERATION",
	ErrorCode_AI_FORMAT_FAILED:                "AI_FORMAT_FAILED",
	ErrorCode_REVIEW_INVALID_ACTION:           "REVIEW_INVALID_ACTION",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_INTEGRATION_UNAVAILABLE:         "INTEGRATION_UNAVAILABLE",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
