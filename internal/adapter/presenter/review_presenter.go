package presenter

import (
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/review"
	"github.com/johnquangdev/contact-qa/internal/usecase/annotation"
)

// ToViewResponse converts a review view to ViewResponse DTO
func ToViewResponse(v *annotation.View) *review.ViewResponse {
	if v == nil {
		return nil
	}

	snippets := make([]review.SnippetResponse, 0, len(v.Snippets))
	for _, s := range v.Snippets {
		snippets = append(snippets, review.SnippetResponse{
			ID:       s.ID,
			Speaker:  s.Speaker,
			Text:     s.Text,
			Selected: s.Selected,
			Emotion:  string(s.Emotion),
			Comments: orEmpty(s.Comments),
			Tags:     orEmpty(s.Tags),
		})
	}

	return &review.ViewResponse{
		ContactID:   v.ContactID,
		Mode:        string(v.Mode),
		Selection:   orEmpty(v.Selection),
		Snippets:    snippets,
		Comments:    orEmpty(v.Comments),
		Tags:        orEmpty(v.Tags),
		Emotions:    orEmpty(v.Emotions),
		OpenDialogs: orEmpty(v.OpenDialogs),
	}
}

// orEmpty keeps JSON arrays from rendering as null
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
