package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/contact-qa/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	session        echo.MiddlewareFunc
	formHandler    *Form
	reviewHandler  *Review
	contactHandler *Contact
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, session echo.MiddlewareFunc, formHandler *Form, reviewHandler *Review, contactHandler *Contact) *Router {
	return &Router{
		cfg:            cfg,
		session:        session,
		formHandler:    formHandler,
		reviewHandler:  reviewHandler,
		contactHandler: contactHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group, every route is bound to a browser session
	v1 := e.Group("/v1", rt.session)

	rt.setupDraftRoutes(v1)
	rt.setupFormRoutes(v1)
	rt.setupContactRoutes(v1)
}

// setupDraftRoutes configures draft store routes
func (rt *Router) setupDraftRoutes(g *echo.Group) {
	drafts := g.Group("/drafts")
	drafts.GET("", rt.formHandler.LoadDraft)
	drafts.PUT("", rt.formHandler.SaveDraft)
	drafts.DELETE("", rt.formHandler.ClearDraft)
}

// setupFormRoutes configures assessment form routes
func (rt *Router) setupFormRoutes(g *echo.Group) {
	form := g.Group("/form")
	form.GET("", rt.formHandler.GetForm)
	form.PATCH("/fields", rt.formHandler.UpdateField)
	form.POST("/contact-id", rt.formHandler.ChangeContactID)
	form.POST("/contact-id/confirm", rt.formHandler.ConfirmContactChange)
	form.POST("/contact-id/cancel", rt.formHandler.CancelContactChange)
	form.POST("/validate", rt.formHandler.Validate)
	form.POST("/submit", rt.formHandler.Submit)
	form.POST("/reset", rt.formHandler.Reset)
	form.POST("/generate", rt.formHandler.Generate)
	form.POST("/format-transcript", rt.formHandler.FormatTranscript)
	form.POST("/transcript/upload", rt.formHandler.UploadTranscript)
}

// setupContactRoutes configures contact and transcript review routes
func (rt *Router) setupContactRoutes(g *echo.Group) {
	contacts := g.Group("/contacts")
	contacts.GET("", rt.contactHandler.List)
	contacts.POST("/uploads", rt.contactHandler.Upload)
	contacts.GET("/:contactId/assessment", rt.contactHandler.GetAssessment)
	contacts.POST("/:contactId/feedback", rt.contactHandler.SaveFeedback)
	contacts.GET("/:contactId/snippets", rt.contactHandler.Snippets)

	review := contacts.Group("/:contactId/review")
	review.GET("", rt.reviewHandler.Get)
	review.POST("/mode", rt.reviewHandler.ToggleMode)
	review.POST("/snippets/:snippetId/toggle", rt.reviewHandler.ToggleSnippet)
	review.DELETE("/selection", rt.reviewHandler.ClearSelection)
	review.POST("/comments", rt.reviewHandler.AddComment)
	review.DELETE("/comments/:id", rt.reviewHandler.RemoveComment)
	review.POST("/tags", rt.reviewHandler.AddTag)
	review.DELETE("/tags/:id", rt.reviewHandler.RemoveTag)
	review.POST("/emotions", rt.reviewHandler.ApplyEmotion)
	review.DELETE("/emotions/:snippetId", rt.reviewHandler.RemoveEmotion)
	review.POST("/dialogs/:name/:action", rt.reviewHandler.Dialog)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
