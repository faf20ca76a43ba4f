package draft

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
)

// Persisted draft keys
const (
	KeyContactID           = "manual_contact_id"
	KeyEvaluator           = "manual_evaluator"
	KeyTranscript          = "manual_transcript"
	KeySpecialService      = "manual_special_service"
	KeySummary             = "manual_summary"
	KeySummaryPoints       = "manual_summary_points"
	KeyAssessmentQuestions = "manual_assessment_questions"

	// KeyUnsaved marks a form holding work that was never submitted
	KeyUnsaved = "manual_unsaved"
)

// TrackedKeys lists every key the store owns, in persistence order
var TrackedKeys = []string{
	KeyContactID,
	KeyEvaluator,
	KeyTranscript,
	KeySpecialService,
	KeySummary,
	KeySummaryPoints,
	KeyAssessmentQuestions,
}

// LoadFailedNotice is returned when a saved draft cannot be read back
var LoadFailedNotice = entities.Notice{
	Title:       "Warning",
	Description: "Failed to load saved data. Your changes may not be preserved.",
	Variant:     entities.NoticeWarning,
}

// Store mirrors an in-progress assessment form into session storage
type Store struct {
	storage repositories.SessionStorage
	logger  *zap.Logger
}

// NewStore creates a draft store over the given storage
func NewStore(storage repositories.SessionStorage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{storage: storage, logger: logger}
}

// Namespace returns the storage namespace of a session's draft
func Namespace(sessionID uuid.UUID) string {
	return "draft:" + sessionID.String()
}

// Load reads the saved draft. It never fails: on any read or decode error the
// result is an all-default draft plus a warning notice.
func (s *Store) Load(ctx context.Context, sessionID uuid.UUID) (entities.DraftFormData, *entities.Notice) {
	ns := Namespace(sessionID)
	data := entities.NewDraftFormData()

	values := make(map[string]string, len(TrackedKeys))
	for _, key := range TrackedKeys {
		value, ok, err := s.storage.Get(ctx, ns, key)
		if err != nil {
			return s.loadFailed(sessionID, key, err)
		}
		if ok {
			values[key] = value
		}
	}

	data.ContactID = values[KeyContactID]
	data.Evaluator = values[KeyEvaluator]
	data.Transcript = values[KeyTranscript]
	data.OverallSummary = values[KeySummary]
	if v, ok := values[KeySpecialService]; ok {
		data.IsSpecialServiceTeam = entities.SpecialService(v)
	}

	if raw, ok := values[KeySummaryPoints]; ok {
		if err := json.Unmarshal([]byte(raw), &data.DetailedSummaryPoints); err != nil {
			return s.loadFailed(sessionID, KeySummaryPoints, err)
		}
	}
	if raw, ok := values[KeyAssessmentQuestions]; ok {
		if err := json.Unmarshal([]byte(raw), &data.AssessmentQuestions); err != nil {
			return s.loadFailed(sessionID, KeyAssessmentQuestions, err)
		}
	}

	return data.Normalize(), nil
}

func (s *Store) loadFailed(sessionID uuid.UUID, key string, err error) (entities.DraftFormData, *entities.Notice) {
	s.logger.Warn("Error loading form data from session storage",
		zap.String("session_id", sessionID.String()),
		zap.String("key", key),
		zap.Error(err),
	)
	notice := LoadFailedNotice
	return entities.NewDraftFormData(), &notice
}

// Save writes every non-empty field. Empty strings, an unset special service
// answer and empty sequences are skipped so a transient empty value never
// overwrites a stored one. Failures are logged per field.
func (s *Store) Save(ctx context.Context, sessionID uuid.UUID, data entities.DraftFormData) {
	ns := Namespace(sessionID)

	write := func(key, value string) {
		if value == "" {
			return
		}
		if err := s.storage.Set(ctx, ns, key, value); err != nil {
			s.logger.Error("Error saving form data to session storage",
				zap.String("session_id", sessionID.String()),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	write(KeyContactID, data.ContactID)
	write(KeyEvaluator, data.Evaluator)
	write(KeyTranscript, data.Transcript)
	if data.IsSpecialServiceTeam.IsValid() {
		write(KeySpecialService, string(data.IsSpecialServiceTeam))
	}
	write(KeySummary, data.OverallSummary)

	if len(data.DetailedSummaryPoints) > 0 {
		write(KeySummaryPoints, s.encode(sessionID, KeySummaryPoints, data.DetailedSummaryPoints))
	}
	if len(data.AssessmentQuestions) > 0 {
		write(KeyAssessmentQuestions, s.encode(sessionID, KeyAssessmentQuestions, data.AssessmentQuestions))
	}
}

func (s *Store) encode(sessionID uuid.UUID, key string, v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Error encoding form data",
			zap.String("session_id", sessionID.String()),
			zap.String("key", key),
			zap.Error(err),
		)
		return ""
	}
	return string(raw)
}

// MarkUnsaved records that the session's form holds unsubmitted work
func (s *Store) MarkUnsaved(ctx context.Context, sessionID uuid.UUID) {
	if err := s.storage.Set(ctx, Namespace(sessionID), KeyUnsaved, "true"); err != nil {
		s.logger.Error("Error saving form data to session storage",
			zap.String("session_id", sessionID.String()),
			zap.String("key", KeyUnsaved),
			zap.Error(err),
		)
	}
}

// HasUnsaved reports whether MarkUnsaved was called since the last Clear.
// Read errors count as no unsaved work.
func (s *Store) HasUnsaved(ctx context.Context, sessionID uuid.UUID) bool {
	value, ok, err := s.storage.Get(ctx, Namespace(sessionID), KeyUnsaved)
	if err != nil {
		s.logger.Warn("Error loading form data from session storage",
			zap.String("session_id", sessionID.String()),
			zap.String("key", KeyUnsaved),
			zap.Error(err),
		)
		return false
	}
	return ok && value == "true"
}

// Clear removes every tracked key and the unsaved marker
func (s *Store) Clear(ctx context.Context, sessionID uuid.UUID) {
	keys := append(append([]string{}, TrackedKeys...), KeyUnsaved)
	if err := s.storage.Delete(ctx, Namespace(sessionID), keys...); err != nil {
		s.logger.Error("Error clearing form data from session storage",
			zap.String("session_id", sessionID.String()),
			zap.Error(err),
		)
	}
}
