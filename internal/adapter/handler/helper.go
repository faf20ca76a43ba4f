package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/errors"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	httpmw "github.com/johnquangdev/contact-qa/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/contact-qa/internal/usecase/assessment"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleSuccessStatus(logger, c, http.StatusOK, data)
}

func handleSuccessStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// withNotice attaches the notice shown for a failure to the error response
func withNotice(err error, notice *entities.Notice) error {
	appErr := toAppError(err)
	if notice == nil {
		return appErr
	}
	return appErr.
		WithDetail("notice_title", notice.Title).
		WithDetail("notice_description", notice.Description).
		WithDetail("notice_variant", string(notice.Variant))
}

// toAppError maps usecase and domain errors onto the HTTP error taxonomy
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var verr *assessment.ValidationError
	if stdErrors.As(err, &verr) {
		return errors.ErrValidation(string(verr.Field), verr.Title, verr.Description)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrSubmitInProgress):
		return errors.ErrSubmitInProgress()
	case stdErrors.Is(err, usecaseErrors.ErrNoPendingContactChange):
		return errors.ErrNoPendingContactChange()
	case stdErrors.Is(err, usecaseErrors.ErrSaveFailed):
		return errors.ErrAssessmentSaveFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrGenerationFailed):
		return errors.ErrAIGenerationFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrStaleGeneration):
		return errors.ErrStaleGeneration()
	case stdErrors.Is(err, usecaseErrors.ErrGenerationRunning):
		return errors.ErrConflict("AI assessment is already running")
	case stdErrors.Is(err, usecaseErrors.ErrFormatFailed):
		return errors.ErrFormatFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrUnknownField):
		return errors.ErrUnknownField(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptTooLarge):
		return errors.ErrPayloadTooLarge("Transcript file is too large")
	case stdErrors.Is(err, usecaseErrors.ErrStorageFailed):
		return errors.ErrStorageFailed("upload transcript", err)
	case stdErrors.Is(err, usecaseErrors.ErrStorageDisabled):
		return errors.ErrServiceUnavailable("Transcript uploads are not enabled")
	case stdErrors.Is(err, usecaseErrors.ErrEmptySelection),
		stdErrors.Is(err, usecaseErrors.ErrBlankText),
		stdErrors.Is(err, usecaseErrors.ErrInvalidEmotion),
		stdErrors.Is(err, usecaseErrors.ErrUnknownDialog),
		stdErrors.Is(err, usecaseErrors.ErrSnippetNotFound):
		return errors.ErrReviewInvalidAction(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrNotFound),
		stdErrors.Is(err, entities.ErrContactNotFound),
		stdErrors.Is(err, entities.ErrConversationNotFound),
		stdErrors.Is(err, entities.ErrAssessmentNotFound):
		return errors.ErrNotFound(notFoundResource(err))
	case stdErrors.Is(err, usecaseErrors.ErrGatewayRejected):
		return errors.ErrExternalAPIFailed("persistence gateway", err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, usecaseErrors.ErrInvalidSpecialService),
		stdErrors.Is(err, usecaseErrors.ErrUnformattedTranscript),
		stdErrors.Is(err, usecaseErrors.ErrUnsupportedFileType),
		stdErrors.Is(err, usecaseErrors.ErrMissingColumns),
		stdErrors.Is(err, usecaseErrors.ErrNoValidRows),
		stdErrors.Is(err, usecaseErrors.ErrMissingContactID),
		stdErrors.Is(err, usecaseErrors.ErrMissingEvaluator),
		stdErrors.Is(err, usecaseErrors.ErrMissingTranscript):
		return errors.ErrInvalidArgument(err.Error())
	}
	return errors.ErrInternal(err)
}

func notFoundResource(err error) string {
	switch {
	case stdErrors.Is(err, entities.ErrAssessmentNotFound):
		return "Assessment"
	case stdErrors.Is(err, entities.ErrConversationNotFound):
		return "Conversation"
	}
	return "Contact"
}

// sessionID reads the browser session bound by the session middleware
func sessionID(c echo.Context) (uuid.UUID, error) {
	id, ok := httpmw.GetSessionID(c)
	if !ok {
		return uuid.Nil, errors.ErrSessionInvalid()
	}
	return id, nil
}

// bindAndValidate binds the request and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}
