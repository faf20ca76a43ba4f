package entities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Speaker roles alternate through a transcript, agent first
const (
	SpeakerAgent    = "Agent"
	SpeakerCustomer = "Customer"
)

// snippetNamespace scopes derived snippet ids
var snippetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("contact-qa/snippets"))

// Snippet is one speaker turn of a transcript
type Snippet struct {
	ID      string `json:"id"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SpeakerForIndex derives the speaker from the position of the turn
func SpeakerForIndex(i int) string {
	if i%2 == 0 {
		return SpeakerAgent
	}
	return SpeakerCustomer
}

// SnippetsFromTranscript splits a transcript into one snippet per non-blank
// line. Ids are derived from contact id, position and text, so the same
// transcript always yields the same ids.
func SnippetsFromTranscript(contactID, transcript string) []Snippet {
	snippets := make([]Snippet, 0)
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		i := len(snippets)
		text := line
		for _, prefix := range []string{SpeakerAgent + ":", SpeakerCustomer + ":"} {
			if strings.HasPrefix(text, prefix) {
				text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
				break
			}
		}
		snippets = append(snippets, Snippet{
			ID:      uuid.NewSHA1(snippetNamespace, []byte(fmt.Sprintf("%s:%d:%s", contactID, i, line))).String(),
			Speaker: SpeakerForIndex(i),
			Text:    text,
		})
	}
	return snippets
}
