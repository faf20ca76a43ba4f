package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/errors"
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/review"
	"github.com/johnquangdev/contact-qa/internal/adapter/presenter"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/usecase/annotation"
)

// Review handles snippet annotation of a contact transcript
type Review struct {
	service *annotation.Service
	logger  *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *annotation.Service, logger *zap.Logger) *Review {
	return &Review{
		service: service,
		logger:  logger,
	}
}

type reviewOp func(sid uuid.UUID, contactID string) (*annotation.View, error)

// run resolves the session and contact, then renders the resulting view
func (h *Review) run(c echo.Context, op reviewOp) error {
	sid, err := sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	contactID := strings.TrimSpace(c.Param("contactId"))
	if contactID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("contactId is required"))
	}

	view, err := op(sid, contactID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(view))
}

// Get handles GET /contacts/:contactId/review
// @Summary      Get the review state
// @Description  Returns the snippets of a contact with comments, tags, emotions and the current selection.
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Success      200        {object}  review.ViewResponse
// @Failure      404        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/review [get]
func (h *Review) Get(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.Get(ctx, sid, contactID)
	})
}

// ToggleMode handles POST /contacts/:contactId/review/mode
// @Summary      Toggle selection mode
// @Description  Switches between browsing and selecting. Leaving selecting clears the selection.
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/mode [post]
func (h *Review) ToggleMode(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.ToggleMode(ctx, sid, contactID)
	})
}

// ToggleSnippet handles POST /contacts/:contactId/review/snippets/:snippetId/toggle
// @Summary      Toggle a snippet
// @Description  Adds or removes a snippet from the selection. Ignored while browsing.
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Param        snippetId  path      string  true  "Snippet ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/snippets/{snippetId}/toggle [post]
func (h *Review) ToggleSnippet(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.ToggleSnippet(ctx, sid, contactID, c.Param("snippetId"))
	})
}

// ClearSelection handles DELETE /contacts/:contactId/review/selection
// @Summary      Clear the selection
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/selection [delete]
func (h *Review) ClearSelection(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.ClearSelection(ctx, sid, contactID)
	})
}

// AddComment handles POST /contacts/:contactId/review/comments
// @Summary      Comment on the selection
// @Description  Attaches a comment to every selected snippet.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        contactId  path      string                    true  "Contact ID"
// @Param        request    body      review.AddCommentRequest  true  "Comment"
// @Success      200        {object}  review.ViewResponse
// @Failure      400        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/review/comments [post]
func (h *Review) AddComment(c echo.Context) error {
	var req review.AddCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.AddComment(ctx, sid, contactID, req.Text)
	})
}

// RemoveComment handles DELETE /contacts/:contactId/review/comments/:id
// @Summary      Remove a comment
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Param        id         path      string  true  "Comment ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/comments/{id} [delete]
func (h *Review) RemoveComment(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.RemoveComment(ctx, sid, contactID, c.Param("id"))
	})
}

// AddTag handles POST /contacts/:contactId/review/tags
// @Summary      Tag snippets
// @Description  Tags the given snippets, or the selection when none are given.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        contactId  path      string                true  "Contact ID"
// @Param        request    body      review.AddTagRequest  true  "Tag"
// @Success      200        {object}  review.ViewResponse
// @Failure      400        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/review/tags [post]
func (h *Review) AddTag(c echo.Context) error {
	var req review.AddTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.AddTag(ctx, sid, contactID, req.Text, req.SnippetIDs)
	})
}

// RemoveTag handles DELETE /contacts/:contactId/review/tags/:id
// @Summary      Remove a tag
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Param        id         path      string  true  "Tag ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/tags/{id} [delete]
func (h *Review) RemoveTag(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.RemoveTag(ctx, sid, contactID, c.Param("id"))
	})
}

// ApplyEmotion handles POST /contacts/:contactId/review/emotions
// @Summary      Label snippets with an emotion
// @Description  Replaces the emotion of the given snippets, or of the selection when none are given.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        contactId  path      string                      true  "Contact ID"
// @Param        request    body      review.ApplyEmotionRequest  true  "Emotion"
// @Success      200        {object}  review.ViewResponse
// @Failure      400        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/review/emotions [post]
func (h *Review) ApplyEmotion(c echo.Context) error {
	var req review.ApplyEmotionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.ApplyEmotion(ctx, sid, contactID, entities.Emotion(req.Emotion), req.SnippetIDs)
	})
}

// RemoveEmotion handles DELETE /contacts/:contactId/review/emotions/:snippetId
// @Summary      Remove a snippet's emotion
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Param        snippetId  path      string  true  "Snippet ID"
// @Success      200        {object}  review.ViewResponse
// @Router       /contacts/{contactId}/review/emotions/{snippetId} [delete]
func (h *Review) RemoveEmotion(c echo.Context) error {
	ctx := c.Request().Context()
	return h.run(c, func(sid uuid.UUID, contactID string) (*annotation.View, error) {
		return h.service.RemoveEmotion(ctx, sid, contactID, c.Param("snippetId"))
	})
}

// Dialog handles POST /contacts/:contactId/review/dialogs/:name/:action
// @Summary      Open, close or touch a dialog
// @Description  Open dialogs close themselves after their inactivity timeout. Touch restarts the timer.
// @Tags         Review
// @Produce      json
// @Param        contactId  path      string  true  "Contact ID"
// @Param        name       path      string  true  "Dialog"  Enums(tag-entry, legend)
// @Param        action     path      string  true  "Action"  Enums(open, close, touch)
// @Success      200        {object}  review.ViewResponse
// @Failure      400        {object}  map[string]interface{}
// @Router       /contacts/{contactId}/review/dialogs/{name}/{action} [post]
func (h *Review) Dialog(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("name")

	var op reviewOp
	switch c.Param("action") {
	case "open":
		op = func(sid uuid.UUID, contactID string) (*annotation.View, error) {
			return h.service.OpenDialog(ctx, sid, contactID, name)
		}
	case "close":
		op = func(sid uuid.UUID, contactID string) (*annotation.View, error) {
			return h.service.CloseDialog(ctx, sid, contactID, name)
		}
	case "touch":
		op = func(sid uuid.UUID, contactID string) (*annotation.View, error) {
			return h.service.TouchDialog(ctx, sid, contactID, name)
		}
	default:
		return HandleError(h.logger, c, errors.ErrInvalidArgument("action must be one of open, close, touch"))
	}
	return h.run(c, op)
}
