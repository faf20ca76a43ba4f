package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// maxUnwrapDepth bounds how many layers of JSON string encoding are peeled
const maxUnwrapDepth = 3

// SummaryPoints is the detailed summary as the gateway delivered it: either
// a list of points or free text that still has to be split.
type SummaryPoints struct {
	structured bool
	points     []string
	text       string
}

// Structured wraps an explicit list of points
func Structured(points []string) SummaryPoints {
	return SummaryPoints{structured: true, points: append([]string{}, points...)}
}

// RawText wraps bullet text
func RawText(text string) SummaryPoints {
	return SummaryPoints{text: text}
}

// IsStructured reports whether the gateway sent an explicit list
func (p SummaryPoints) IsStructured() bool {
	return p.structured
}

// Text returns the raw text of a RawText value
func (p SummaryPoints) Text() string {
	return p.text
}

// Points returns the summary points. Raw text is split into one point per
// non-empty line with bullet markers removed.
func (p SummaryPoints) Points() []string {
	if p.structured {
		return cleanPoints(p.points)
	}
	return SplitBullets(p.text)
}

// Summary is the chat-summary result
type Summary struct {
	ShortSummary string
	Detailed     SummaryPoints
}

// DecodeSummary parses a chat-summary body. It accepts a JSON object, a JSON
// string holding the object, and markdown fenced JSON.
func DecodeSummary(body []byte) (*Summary, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary response: %w", err)
	}
	if err := gatewayError(obj); err != nil {
		return nil, err
	}

	summary := &Summary{Detailed: Structured(nil)}
	if raw, ok := obj["short_summary"]; ok {
		if err := json.Unmarshal(raw, &summary.ShortSummary); err != nil {
			return nil, fmt.Errorf("invalid short_summary: %w", err)
		}
	}
	if raw, ok := obj["detailed_bullet_summary"]; ok {
		summary.Detailed = decodePoints(raw)
	}
	return summary, nil
}

func decodePoints(raw json.RawMessage) SummaryPoints {
	var points []string
	if err := json.Unmarshal(raw, &points); err == nil {
		return Structured(points)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return RawText(strings.TrimSpace(string(raw)))
	}

	inner := extractJSON(text)
	if strings.HasPrefix(inner, "[") {
		if err := json.Unmarshal([]byte(inner), &points); err == nil {
			return Structured(points)
		}
	}
	return RawText(text)
}

// SplitBullets turns bullet text into points
func SplitBullets(text string) []string {
	points := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = trimBullet(line)
		line = trimNumbering(line)
		if line != "" {
			points = append(points, line)
		}
	}
	return points
}

// bulletMarkers start a list item when followed by whitespace
var bulletMarkers = []string{"-", "*", "•", "·"}

// trimBullet removes one leading bullet marker. Markdown such as "**bold**"
// is left alone.
func trimBullet(line string) string {
	for _, marker := range bulletMarkers {
		rest, ok := strings.CutPrefix(line, marker)
		if !ok {
			continue
		}
		if rest == "" {
			return ""
		}
		if rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest)
		}
	}
	return line
}

// trimNumbering removes list numbering such as "1." or "2)"
func trimNumbering(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}

func cleanPoints(points []string) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var errNotObject = errors.New("response is not a JSON object")

// decodeObject peels string encoding and code fences until a JSON object
// remains.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	content := string(body)
	for depth := 0; depth <= maxUnwrapDepth; depth++ {
		content = extractJSON(content)
		if content == "" {
			return nil, errNotObject
		}

		switch content[0] {
		case '{':
			var obj map[string]json.RawMessage
			if err := json.Unmarshal([]byte(content), &obj); err != nil {
				return nil, err
			}
			return obj, nil
		case '"':
			var inner string
			if err := json.Unmarshal([]byte(content), &inner); err != nil {
				return nil, err
			}
			content = inner
		default:
			return nil, errNotObject
		}
	}
	return nil, errNotObject
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
