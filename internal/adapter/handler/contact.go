package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/errors"
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/common"
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/contact"
	"github.com/johnquangdev/contact-qa/internal/adapter/presenter"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	contactUsecase "github.com/johnquangdev/contact-qa/internal/usecase/contact"
)

const defaultContactsLimit = 50

// Contact handles uploaded contacts and their saved results
type Contact struct {
	service contactUsecase.Service
	logger  *zap.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service contactUsecase.Service, logger *zap.Logger) *Contact {
	return &Contact{
		service: service,
		logger:  logger,
	}
}

// List handles GET /contacts
// @Summary      List uploaded contacts
// @Description  Lists uploaded contacts with their latest conversation, newest first.
// @Tags         Contacts
// @Produce      json
// @Param        limit   query     int  false  "Page size"  default(50)
// @Param        offset  query     int  false  "Offset"     default(0)
// @Success      200     {object}  common.ListResponse
// @Failure      400     {object}  map[string]interface{}
// @Router       /contacts [get]
func (h *Contact) List(c echo.Context) error {
	var req contact.ListContactsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Limit == 0 {
		req.Limit = defaultContactsLimit
	}

	items, err := h.service.ListContacts(c.Request().Context(), req.Limit, req.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if items == nil {
		items = []*entities.ContactListItem{}
	}

	return HandleSuccess(h.logger, c, &common.ListResponse{
		Data: items,
		Pagination: &common.PaginationResponse{
			Limit:  req.Limit,
			Offset: req.Offset,
			Count:  len(items),
		},
	})
}

// Upload handles POST /contacts/uploads
// @Summary      Upload contacts
// @Description  Stores every row of a CSV or JSON file carrying contactId and evaluator.
// @Tags         Contacts
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Contacts file (.csv or .json)"
// @Param        adminId  formData  string  false  "Uploading admin"
// @Success      201      {object}  contact.UploadResponse
// @Failure      400      {object}  map[string]interface{}
// @Router       /contacts/uploads [post]
func (h *Contact) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}
	file, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer file.Close()

	input := contactUsecase.UploadInput{
		Filename: fh.Filename,
		Reader:   file,
	}
	if admin := strings.TrimSpace(c.FormValue("adminId")); admin != "" {
		input.AdminID = &admin
	}

	n, err := h.service.UploadContacts(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return handleSuccessStatus(h.logger, c, http.StatusCreated, &contact.UploadResponse{Records: n})
}

// GetAssessment handles GET /contacts/:contactId/assessment
// @Summary      Get the saved assessment
// @Description  Returns the submitted assessment of a contact with every evaluator's feedback.
// @Tags         Contacts
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Success      200        {object}  contact.AssessmentResponse
// @Failure      404        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/assessment [get]
func (h *Contact) GetAssessment(c echo.Context) error {
	view, err := h.service.GetAssessment(c.Request().Context(), c.Param("contactId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAssessmentResponse(view))
}

// SaveFeedback handles POST /contacts/:contactId/feedback
// @Summary      Save assessor feedback
// @Description  Creates or replaces the feedback of one evaluator on a contact.
// @Tags         Contacts
// @Accept       json
// @Produce      json
// @Param        contactId  path      string                   true  "Contact ID"
// @Param        request    body      contact.FeedbackRequest  true  "Feedback"
// @Success      200        {object}  entities.QualityAssessorFeedback
// @Failure      400        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/feedback [post]
func (h *Contact) SaveFeedback(c echo.Context) error {
	var req contact.FeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	saved, err := h.service.SaveFeedback(c.Request().Context(), &entities.QualityAssessorFeedback{
		ContactID:              strings.TrimSpace(c.Param("contactId")),
		Evaluator:              strings.TrimSpace(req.Evaluator),
		ComplaintsFlag:         req.ComplaintsFlag,
		VulnerabilityFlag:      req.VulnerabilityFlag,
		ComplaintsReasoning:    req.ComplaintsReasoning,
		VulnerabilityReasoning: req.VulnerabilityReasoning,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, saved)
}

// Snippets handles GET /contacts/:contactId/snippets
// @Summary      Get stored snippets
// @Description  Returns the stored snippets of a contact, optionally narrowed to a comma separated id list.
// @Tags         Contacts
// @Produce      json
// @Param        contactId  path      string  true   "Contact ID"
// @Param        ids        query     string  false  "Snippet ids, comma separated"
// @Success      200        {object}  contact.SnippetsResponse
// @Failure      404        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/snippets [get]
func (h *Contact) Snippets(c echo.Context) error {
	contactID := strings.TrimSpace(c.Param("contactId"))
	ids := splitIDs(c.QueryParams()["ids"])

	snippets, err := h.service.FindSnippets(c.Request().Context(), contactID, ids)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSnippetsResponse(contactID, snippets))
}

// splitIDs accepts both repeated and comma separated query values
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
