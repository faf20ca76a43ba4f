package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/errors"
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/form"
	"github.com/johnquangdev/contact-qa/internal/adapter/presenter"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/usecase/assessment"
	"github.com/johnquangdev/contact-qa/internal/usecase/draft"
)

// Form handles the assessment form and its draft
type Form struct {
	drafts      *draft.Store
	controllers *assessment.Registry
	logger      *zap.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(drafts *draft.Store, controllers *assessment.Registry, logger *zap.Logger) *Form {
	return &Form{
		drafts:      drafts,
		controllers: controllers,
		logger:      logger,
	}
}

func (h *Form) controller(c echo.Context) (*assessment.Controller, *entities.Notice, error) {
	sid, err := sessionID(c)
	if err != nil {
		return nil, nil, err
	}
	ctrl, notice := h.controllers.Get(c.Request().Context(), sid)
	return ctrl, notice, nil
}

// run mounts the session's controller and renders the outcome of op
func (h *Form) run(c echo.Context, op func(ctrl *assessment.Controller) (assessment.Result, error)) error {
	ctrl, mountNotice, err := h.controller(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := op(ctrl)
	if err != nil {
		notice := res.Notice
		if notice == nil {
			notice = mountNotice
		}
		return HandleError(h.logger, c, withNotice(err, notice))
	}
	return HandleSuccess(h.logger, c, presenter.ToResultResponse(res, mountNotice))
}

// LoadDraft handles GET /drafts
// @Summary      Load the saved draft
// @Description  Returns the draft of the current session. Unreadable drafts come back as defaults with a warning notice.
// @Tags         Drafts
// @Produce      json
// @Success      200  {object}  form.DraftResponse
// @Router       /drafts [get]
func (h *Form) LoadDraft(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	d, notice := h.drafts.Load(c.Request().Context(), sid)
	return HandleSuccess(h.logger, c, presenter.ToDraftResponse(d, notice))
}

// SaveDraft handles PUT /drafts
// @Summary      Save the draft
// @Description  Writes every non-empty field of the draft. Empty fields never overwrite stored values.
// @Tags         Drafts
// @Accept       json
// @Produce      json
// @Param        request  body      form.SaveDraftRequest  true  "Draft"
// @Success      200      {object}  form.DraftResponse
// @Failure      400      {object}  map[string]interface{}
// @Router       /drafts [put]
func (h *Form) SaveDraft(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req form.SaveDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	h.drafts.Save(ctx, sid, req.ToDraft())
	d, notice := h.drafts.Load(ctx, sid)
	return HandleSuccess(h.logger, c, presenter.ToDraftResponse(d, notice))
}

// ClearDraft handles DELETE /drafts
// @Summary      Clear the draft
// @Tags         Drafts
// @Produce      json
// @Success      200  {object}  form.DraftResponse
// @Router       /drafts [delete]
func (h *Form) ClearDraft(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	h.drafts.Clear(c.Request().Context(), sid)
	return HandleSuccess(h.logger, c, presenter.ToDraftResponse(entities.NewDraftFormData(), nil))
}

// GetForm handles GET /form
// @Summary      Get the assessment form
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Router       /form [get]
func (h *Form) GetForm(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return assessment.Result{State: ctrl.State()}, nil
	})
}

// UpdateField handles PATCH /form/fields
// @Summary      Update a form field
// @Description  Sets one field and mirrors the form into the draft. Changing contactId may require confirmation.
// @Tags         Form
// @Accept       json
// @Produce      json
// @Param        request  body      form.UpdateFieldRequest  true  "Field and value"
// @Success      200      {object}  form.ResultResponse
// @Failure      400      {object}  map[string]interface{}
// @Router       /form/fields [patch]
func (h *Form) UpdateField(c echo.Context) error {
	var req form.UpdateFieldRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	field := assessment.Field(req.Field)
	value, err := assessment.ParseFieldValue(field, req.Value)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.UpdateField(c.Request().Context(), field, value)
	})
}

// ChangeContactID handles POST /form/contact-id
// @Summary      Change the contact id
// @Description  Applies the id, or stages it behind an "Unsaved Changes" prompt when the form holds unsaved work.
// @Tags         Form
// @Accept       json
// @Produce      json
// @Param        request  body      form.ChangeContactIDRequest  true  "New contact id"
// @Success      200      {object}  form.ResultResponse
// @Router       /form/contact-id [post]
func (h *Form) ChangeContactID(c echo.Context) error {
	var req form.ChangeContactIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.ChangeContactID(c.Request().Context(), req.ContactID)
	})
}

// ConfirmContactChange handles POST /form/contact-id/confirm
// @Summary      Confirm the staged contact id
// @Description  Discards the form and the draft, then applies the staged contact id.
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Failure      409  {object}  map[string]interface{}
// @Router       /form/contact-id/confirm [post]
func (h *Form) ConfirmContactChange(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.ConfirmContactChange(c.Request().Context())
	})
}

// CancelContactChange handles POST /form/contact-id/cancel
// @Summary      Cancel the staged contact id
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Router       /form/contact-id/cancel [post]
func (h *Form) CancelContactChange(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.CancelContactChange(), nil
	})
}

// Validate handles POST /form/validate
// @Summary      Validate the form
// @Description  Reports the first failing check: transcript, contact id, then evaluator.
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Failure      422  {object}  map[string]interface{}
// @Router       /form/validate [post]
func (h *Form) Validate(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.Validate()
	})
}

// Submit handles POST /form/submit
// @Summary      Submit the assessment
// @Description  Saves the assessment, clears the draft and returns the results view as redirect.
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Failure      409  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /form/submit [post]
func (h *Form) Submit(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.Submit(c.Request().Context())
	})
}

// Reset handles POST /form/reset
// @Summary      Reset the form
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Router       /form/reset [post]
func (h *Form) Reset(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.Reset(c.Request().Context()), nil
	})
}

// Generate handles POST /form/generate
// @Summary      Generate the AI assessment
// @Description  Requests the summary and the contact assessment together; both must succeed.
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Failure      409  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /form/generate [post]
func (h *Form) Generate(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.Generate(c.Request().Context())
	})
}

// FormatTranscript handles POST /form/format-transcript
// @Summary      Format the transcript
// @Description  Prefixes each line with its speaker. Already formatted transcripts are left alone.
// @Tags         Form
// @Produce      json
// @Success      200  {object}  form.ResultResponse
// @Failure      502  {object}  map[string]interface{}
// @Router       /form/format-transcript [post]
func (h *Form) FormatTranscript(c echo.Context) error {
	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.FormatTranscript(c.Request().Context())
	})
}

// UploadTranscript handles POST /form/transcript/upload
// @Summary      Upload a transcript file
// @Description  Stores a .txt transcript and loads its text into the form.
// @Tags         Form
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Transcript (.txt)"
// @Success      200   {object}  form.ResultResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      413   {object}  map[string]interface{}
// @Router       /form/transcript/upload [post]
func (h *Form) UploadTranscript(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}
	file, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer file.Close()

	return h.run(c, func(ctrl *assessment.Controller) (assessment.Result, error) {
		return ctrl.UploadTranscript(c.Request().Context(), fh.Filename, file, fh.Size)
	})
}
