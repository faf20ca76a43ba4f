package assessment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
	"github.com/johnquangdev/contact-qa/internal/usecase/draft"
	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
	"github.com/johnquangdev/contact-qa/pkg/ai"
	"github.com/johnquangdev/contact-qa/pkg/gencontext"
)

// Assessment question ids filled by generation
const (
	QuestionComplaint     = "complaint"
	QuestionVulnerability = "vulnerability"
)

// Dependencies are the collaborators shared by every controller
type Dependencies struct {
	Drafts            *draft.Store
	Gateway           repositories.PersistenceGateway
	AI                AIGateway
	Transcripts       TranscriptStore
	GenerationTimeout time.Duration
	MaxUploadBytes    int64
	Clock             clock.Clock
	Logger            *zap.Logger
}

// State is a snapshot of a controller
type State struct {
	Form              entities.DraftFormData
	HasUnsavedChanges bool
	PendingContactID  *string
	Assessment        *entities.ContactAssessment
	Generating        bool
	Submitting        bool
	Epoch             uint64
}

// Result is the outcome of a controller operation
type Result struct {
	State    State
	Notice   *entities.Notice
	Redirect string
}

// Controller orchestrates one browser session's assessment form. Operations
// are serialized; gateway calls run without holding the lock, and their
// results are dropped when the epoch moved on in the meantime.
type Controller struct {
	mu        sync.Mutex
	sessionID uuid.UUID
	deps      Dependencies
	logger    *zap.Logger

	form       entities.DraftFormData
	hasUnsaved bool
	pending    *string
	assessment *entities.ContactAssessment
	epoch      uint64
	submitting bool
	generating bool
	cancelGen  context.CancelFunc
	lastUsed   time.Time
}

// NewController mounts a controller from the saved draft. The notice is set
// when the draft could not be read.
func NewController(ctx context.Context, sessionID uuid.UUID, deps Dependencies) (*Controller, *entities.Notice) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.GenerationTimeout <= 0 {
		deps.GenerationTimeout = 90 * time.Second
	}

	form, notice := deps.Drafts.Load(ctx, sessionID)
	return &Controller{
		sessionID:  sessionID,
		deps:       deps,
		logger:     logger.With(zap.String("session_id", sessionID.String())),
		form:       form,
		hasUnsaved: notice == nil && deps.Drafts.HasUnsaved(ctx, sessionID),
		lastUsed:   deps.Clock.Now(),
	}, notice
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	st := State{
		Form:              c.form.Clone(),
		HasUnsavedChanges: c.hasUnsaved,
		Generating:        c.generating,
		Submitting:        c.submitting,
		Epoch:             c.epoch,
	}
	if c.pending != nil {
		id := *c.pending
		st.PendingContactID = &id
	}
	if c.assessment != nil {
		a := *c.assessment
		st.Assessment = &a
	}
	return st
}

func (c *Controller) result(notice *entities.Notice) Result {
	return Result{State: c.stateLocked(), Notice: notice}
}

func (c *Controller) touch() {
	c.lastUsed = c.deps.Clock.Now()
}

func (c *Controller) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

func (c *Controller) save(ctx context.Context) {
	c.deps.Drafts.Save(ctx, c.sessionID, c.form)
}

// markUnsaved flags the form and persists the flag so a remounted
// controller still prompts before discarding the work.
func (c *Controller) markUnsaved(ctx context.Context) {
	if c.hasUnsaved {
		return
	}
	c.hasUnsaved = true
	c.deps.Drafts.MarkUnsaved(ctx, c.sessionID)
}

// bumpEpoch invalidates every in-flight generation
func (c *Controller) bumpEpoch() {
	c.epoch++
	if c.cancelGen != nil {
		c.cancelGen()
		c.cancelGen = nil
	}
	c.generating = false
}

func (c *Controller) resetLocked(ctx context.Context) {
	c.form = entities.NewDraftFormData()
	c.hasUnsaved = false
	c.pending = nil
	c.assessment = nil
	c.bumpEpoch()
	c.deps.Drafts.Clear(ctx, c.sessionID)
}

// UpdateField sets a form field and mirrors the form into the draft store.
// Contact id changes go through ChangeContactID.
func (c *Controller) UpdateField(ctx context.Context, field Field, value any) (Result, error) {
	if field == FieldContactID {
		id, ok := value.(string)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s must be a string", usecaseErrors.ErrInvalidInput, field)
		}
		return c.ChangeContactID(ctx, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	switch field {
	case FieldEvaluator, FieldTranscript, FieldOverallSummary, FieldSpecialService:
		s, ok := value.(string)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s must be a string", usecaseErrors.ErrInvalidInput, field)
		}
		switch field {
		case FieldEvaluator:
			c.form.Evaluator = s
		case FieldTranscript:
			c.form.Transcript = s
		case FieldOverallSummary:
			c.form.OverallSummary = s
		case FieldSpecialService:
			answer := entities.SpecialService(s)
			if !answer.IsValid() {
				return Result{}, usecaseErrors.ErrInvalidSpecialService
			}
			c.form.IsSpecialServiceTeam = answer
		}
	case FieldSummaryPoints:
		points, ok := value.([]string)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s must be a list of strings", usecaseErrors.ErrInvalidInput, field)
		}
		c.form.DetailedSummaryPoints = append([]string{}, points...)
	case FieldAssessmentQuestions:
		questions, ok := value.([]entities.AssessmentQuestion)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s must be a list of questions", usecaseErrors.ErrInvalidInput, field)
		}
		c.form.AssessmentQuestions = append([]entities.AssessmentQuestion{}, questions...)
	default:
		return Result{}, usecaseErrors.ErrUnknownField
	}

	if field.marksUnsaved() {
		c.markUnsaved(ctx)
	}
	c.save(ctx)
	return c.result(nil), nil
}

// UnsavedChangesNotice is the prompt shown before discarding work
var UnsavedChangesNotice = entities.Notice{
	Title:       "Unsaved Changes",
	Description: "You have unsaved changes. Changing the contact ID will discard them. Proceed without saving?",
	Variant:     entities.NoticeWarning,
}

// ChangeContactID applies a new contact id, or stages it behind a
// confirmation prompt when the form holds unsaved work.
func (c *Controller) ChangeContactID(ctx context.Context, id string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if id == c.form.ContactID {
		c.pending = nil
		return c.result(nil), nil
	}
	if c.hasUnsaved {
		staged := id
		c.pending = &staged
		notice := UnsavedChangesNotice
		return c.result(&notice), nil
	}

	c.form.ContactID = id
	c.pending = nil
	c.bumpEpoch()
	c.save(ctx)
	return c.result(nil), nil
}

// ConfirmContactChange applies the staged contact id and discards the rest
// of the form.
func (c *Controller) ConfirmContactChange(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if c.pending == nil {
		return Result{}, usecaseErrors.ErrNoPendingContactChange
	}
	id := *c.pending

	c.resetLocked(ctx)
	c.form.ContactID = id
	c.save(ctx)

	c.logger.Info("Contact changed without saving", zap.String("contact_id", id))
	return c.result(nil), nil
}

// CancelContactChange drops the staged contact id
func (c *Controller) CancelContactChange() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	c.pending = nil
	return c.result(nil)
}

// Validate reports the first failing form check
func (c *Controller) Validate() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if err := Validate(c.form); err != nil {
		return c.result(noticeFor(err)), err
	}
	return c.result(nil), nil
}

// Reset discards the form and the saved draft
func (c *Controller) Reset(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	c.resetLocked(ctx)
	return c.result(nil)
}

// Submit saves the assessment through the persistence gateway. On success
// the draft is cleared and the form reset, unless the contact changed while
// saving, and the result view is returned as the redirect. On failure nothing changes so the user can retry.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	c.touch()
	if err := Validate(c.form); err != nil {
		res := c.result(noticeFor(err))
		c.mu.Unlock()
		return res, err
	}
	if c.submitting {
		res := c.result(nil)
		c.mu.Unlock()
		return res, usecaseErrors.ErrSubmitInProgress
	}
	c.submitting = true
	payload := c.payloadLocked()
	epoch := c.epoch
	c.mu.Unlock()

	err := c.deps.Gateway.SaveAssessmentDetails(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		c.logger.Error("Error saving assessment details",
			zap.String("contact_id", payload.AWSRefID),
			zap.Error(err),
		)
		notice := entities.NewNotice(entities.NoticeDestructive, "Error", "Failed to save assessment details. Please try again.")
		return c.result(notice), fmt.Errorf("%w: %w", usecaseErrors.ErrSaveFailed, err)
	}

	// the form moved on to another contact while saving; leave it alone
	if c.epoch == epoch {
		c.resetLocked(ctx)
	}
	c.logger.Info("Assessment details saved", zap.String("contact_id", payload.AWSRefID))

	res := c.result(entities.NewNotice(entities.NoticeSuccess, "Success", "Assessment details saved successfully"))
	res.Redirect = "/contacts/" + url.PathEscape(payload.AWSRefID)
	return res, nil
}

func (c *Controller) payloadLocked() *entities.SaveAssessmentPayload {
	p := &entities.SaveAssessmentPayload{
		AWSRefID:            strings.TrimSpace(c.form.ContactID),
		TracksmartID:        strings.TrimSpace(c.form.Evaluator),
		Transcript:          c.form.Transcript,
		SpecialServiceTeam:  c.form.IsSpecialServiceTeam.Bool(),
		OverallSummary:      c.form.OverallSummary,
		DetailedSummary:     append([]string{}, c.form.DetailedSummaryPoints...),
		AssessmentQuestions: append([]entities.AssessmentQuestion{}, c.form.AssessmentQuestions...),
	}
	if a := c.assessment; a != nil {
		p.Complaints = &entities.FlagAssessment{
			Flag:      a.Complaint,
			Reasoning: a.ComplaintReason,
			Evidence:  a.ComplaintSnippet,
		}
		p.Vulnerabilities = &entities.FlagAssessment{
			Flag:      a.FinancialVulnerability,
			Reasoning: a.VulnerabilityReason,
			Evidence:  a.VulnerabilitySnippet,
		}
	}
	return p
}

// Generate requests the summary and the contact assessment together. Both
// must succeed for anything to be applied, and nothing is applied when the
// contact changed or the form was reset while the calls were running.
func (c *Controller) Generate(ctx context.Context) (Result, error) {
	c.mu.Lock()
	c.touch()
	if strings.TrimSpace(c.form.Transcript) == "" || strings.TrimSpace(c.form.ContactID) == "" {
		err := &ValidationError{
			Field:       FieldTranscript,
			Title:       "Missing Information",
			Description: "Please ensure you have entered a transcript and contact ID.",
			Err:         usecaseErrors.ErrMissingTranscript,
		}
		if strings.TrimSpace(c.form.Transcript) != "" {
			err.Field, err.Err = FieldContactID, usecaseErrors.ErrMissingContactID
		}
		res := c.result(err.Notice())
		c.mu.Unlock()
		return res, err
	}
	if !IsFormatted(c.form.Transcript) {
		res := c.result(entities.NewNotice(entities.NoticeInfo, "Unformatted Transcript", "Please format the transcript before generating the assessment."))
		c.mu.Unlock()
		return res, usecaseErrors.ErrUnformattedTranscript
	}
	if c.generating {
		res := c.result(nil)
		c.mu.Unlock()
		return res, usecaseErrors.ErrGenerationRunning
	}

	epoch := c.epoch
	contactID := c.form.ContactID
	transcript := c.form.Transcript
	gctx, cancel := gencontext.Begin(ctx, c.sessionID.String(), contactID, epoch, c.deps.GenerationTimeout)
	c.generating = true
	c.cancelGen = cancel
	c.mu.Unlock()
	defer cancel()

	var (
		summary    *ai.Summary
		assessment *ai.ContactAssessment
	)
	g, gctx := errgroup.WithContext(gctx)
	g.Go(func() error {
		s, err := c.deps.AI.Summarize(gctx, transcript)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		a, err := c.deps.AI.Assess(gctx, transcript)
		if err != nil {
			return fmt.Errorf("contact assessment: %w", err)
		}
		assessment = a
		return nil
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	meta := gencontext.GetMetadata(gctx)
	fields := []zap.Field{
		zap.String("run_id", meta.RunID.String()),
		zap.String("contact_id", contactID),
		zap.Uint64("epoch", epoch),
		zap.Duration("elapsed", gencontext.Elapsed(gctx)),
	}

	if c.epoch != epoch {
		c.logger.Warn("Discarding stale AI generation", append(fields, zap.Uint64("current_epoch", c.epoch))...)
		return c.result(nil), usecaseErrors.ErrStaleGeneration
	}
	c.generating = false
	c.cancelGen = nil

	if err != nil {
		c.logger.Error("Error generating assessment", append(fields, zap.Error(err))...)
		notice := entities.NewNotice(entities.NoticeDestructive, "Generation Failed", "Failed to generate AI assessment. Please try again.")
		return c.result(notice), fmt.Errorf("%w: %w", usecaseErrors.ErrGenerationFailed, err)
	}

	c.applyGenerationLocked(summary, assessment)
	c.save(ctx)
	c.logger.Info("AI assessment generated", fields...)

	return c.result(entities.NewNotice(entities.NoticeSuccess, "Assessment Generated", "The AI assessment has been generated successfully.")), nil
}

func (c *Controller) applyGenerationLocked(summary *ai.Summary, a *ai.ContactAssessment) {
	c.form.OverallSummary = summary.ShortSummary
	c.form.DetailedSummaryPoints = summary.Detailed.Points()

	c.assessment = &entities.ContactAssessment{
		FinancialVulnerability: a.FinancialVulnerability,
		VulnerabilityReason:    a.VulnerabilityReason,
		VulnerabilitySnippet:   a.VulnerabilitySnippet,
		Complaint:              a.Complaint,
		ComplaintReason:        a.ComplaintReason,
		ComplaintSnippet:       a.ComplaintSnippet,
	}

	feedback := make(map[string]string, len(c.form.AssessmentQuestions))
	for _, q := range c.form.AssessmentQuestions {
		feedback[q.ID] = q.AssessorFeedback
	}
	c.form.AssessmentQuestions = []entities.AssessmentQuestion{
		{ID: QuestionComplaint, AIAssessment: describe(a.Complaint, a.ComplaintReason), AssessorFeedback: feedback[QuestionComplaint]},
		{ID: QuestionVulnerability, AIAssessment: describe(a.FinancialVulnerability, a.VulnerabilityReason), AssessorFeedback: feedback[QuestionVulnerability]},
	}
}

func describe(flag bool, reason string) string {
	answer := "No"
	if flag {
		answer = "Yes"
	}
	if reason == "" {
		return answer
	}
	return answer + ": " + reason
}

// FormatTranscript prefixes every line with its speaker through the
// persistence gateway. A transcript that is already formatted is left alone.
func (c *Controller) FormatTranscript(ctx context.Context) (Result, error) {
	c.mu.Lock()
	c.touch()
	transcript := c.form.Transcript
	if strings.TrimSpace(transcript) == "" {
		err := &ValidationError{
			Field:       FieldTranscript,
			Title:       "Missing Transcript",
			Description: "Please enter a transcript before formatting.",
			Err:         usecaseErrors.ErrMissingTranscript,
		}
		res := c.result(err.Notice())
		c.mu.Unlock()
		return res, err
	}
	if IsFormatted(transcript) {
		res := c.result(entities.NewNotice(entities.NoticeInfo, "Already Formatted", "The transcript is already in the correct format."))
		c.mu.Unlock()
		return res, nil
	}
	epoch := c.epoch
	c.mu.Unlock()

	res := c.deps.Gateway.Invoke(ctx, entities.OpFormatTranscript, map[string]string{"transcript": transcript})
	formatted, ok := formattedTranscript(res)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !ok {
		c.logger.Error("Error formatting transcript", zap.String("error", res.Error))
		notice := entities.NewNotice(entities.NoticeWarning, "Formatting Issue", "Please ensure each line of dialogue is on a new line and try again.")
		return c.result(notice), usecaseErrors.ErrFormatFailed
	}
	if c.epoch != epoch {
		return c.result(nil), usecaseErrors.ErrStaleGeneration
	}

	c.form.Transcript = formatted
	c.markUnsaved(ctx)
	c.save(ctx)
	return c.result(entities.NewNotice(entities.NoticeSuccess, "Success", "Transcript has been formatted successfully.")), nil
}

func formattedTranscript(res entities.InvokeResult) (string, bool) {
	if !res.Success {
		return "", false
	}
	var formatted string
	switch data := res.Data.(type) {
	case map[string]string:
		formatted = data["formatted_transcript"]
	case map[string]any:
		formatted, _ = data["formatted_transcript"].(string)
	}
	return formatted, formatted != ""
}

// UploadTranscript stores a transcript file and loads its text into the form
func (c *Controller) UploadTranscript(ctx context.Context, filename string, r io.Reader, size int64) (Result, error) {
	if c.deps.Transcripts == nil {
		return Result{}, usecaseErrors.ErrStorageDisabled
	}
	if !strings.EqualFold(path.Ext(filename), ".txt") {
		return Result{}, fmt.Errorf("%w: only .txt transcripts are accepted", usecaseErrors.ErrUnsupportedFileType)
	}
	limit := c.deps.MaxUploadBytes
	if limit > 0 && size > limit {
		return Result{}, usecaseErrors.ErrTranscriptTooLarge
	}

	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read transcript: %w", err)
	}
	if limit > 0 && int64(len(raw)) > limit {
		return Result{}, usecaseErrors.ErrTranscriptTooLarge
	}

	c.mu.Lock()
	contactID := c.form.ContactID
	c.mu.Unlock()
	if contactID == "" {
		contactID = "unassigned"
	}

	objectName := fmt.Sprintf("transcripts/%s/%s/%s-%s", c.sessionID, url.PathEscape(contactID), uuid.NewString(), path.Base(filename))
	location, err := c.deps.Transcripts.UploadTranscript(ctx, objectName, strings.NewReader(string(raw)), int64(len(raw)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", usecaseErrors.ErrStorageFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	c.form.Transcript = strings.TrimSpace(strings.ReplaceAll(string(raw), "\r\n", "\n"))
	c.markUnsaved(ctx)
	c.save(ctx)

	c.logger.Info("Transcript uploaded", zap.String("object", objectName), zap.String("location", location))
	return c.result(entities.NewNotice(entities.NoticeSuccess, "Upload Successful", "Transcript loaded from "+path.Base(filename))), nil
}

func noticeFor(err error) *entities.Notice {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Notice()
	}
	return nil
}
