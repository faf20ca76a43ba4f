package assessment

import (
	"strings"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

// ValidationError is the single failing check of a form
type ValidationError struct {
	Field       Field
	Title       string
	Description string
	Err         error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Notice returns the notice shown for the failure
func (e *ValidationError) Notice() *entities.Notice {
	return entities.NewNotice(entities.NoticeDestructive, e.Title, e.Description)
}

// Validate checks transcript, contact id and evaluator in that order and
// reports the first failure only.
func Validate(form entities.DraftFormData) error {
	switch {
	case strings.TrimSpace(form.Transcript) == "":
		return &ValidationError{
			Field:       FieldTranscript,
			Title:       "Missing Transcript",
			Description: "Please provide the conversation transcript",
			Err:         usecaseErrors.ErrMissingTranscript,
		}
	case strings.TrimSpace(form.ContactID) == "":
		return &ValidationError{
			Field:       FieldContactID,
			Title:       "Missing AWS Ref ID",
			Description: "Please enter the AWS Ref ID",
			Err:         usecaseErrors.ErrMissingContactID,
		}
	case strings.TrimSpace(form.Evaluator) == "":
		return &ValidationError{
			Field:       FieldEvaluator,
			Title:       "Missing TrackSmart ID",
			Description: "Please enter your TrackSmart ID",
			Err:         usecaseErrors.ErrMissingEvaluator,
		}
	}
	return nil
}

// IsFormatted reports whether every non-blank line names its speaker
func IsFormatted(transcript string) bool {
	lines := 0
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++
		if !strings.HasPrefix(line, entities.SpeakerAgent+":") && !strings.HasPrefix(line, entities.SpeakerCustomer+":") {
			return false
		}
	}
	return lines > 0
}
