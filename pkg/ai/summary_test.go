package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSummary(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		short      string
		structured bool
		points     []string
	}{
		{
			name:       "plain object with array",
			body:       `{"short_summary":"Refund request","detailed_bullet_summary":["asked for refund"," agent agreed "]}`,
			short:      "Refund request",
			structured: true,
			points:     []string{"asked for refund", "agent agreed"},
		},
		{
			name:       "double encoded",
			body:       `"{\"short_summary\":\"Refund\",\"detailed_bullet_summary\":[\"a\",\"b\"]}"`,
			short:      "Refund",
			structured: true,
			points:     []string{"a", "b"},
		},
		{
			name:       "fenced json inside a string",
			body:       "\"```json\\n{\\\"short_summary\\\":\\\"S\\\",\\\"detailed_bullet_summary\\\":[\\\"x\\\"]}\\n```\"",
			short:      "S",
			structured: true,
			points:     []string{"x"},
		},
		{
			name:       "points as json array text",
			body:       `{"short_summary":"S","detailed_bullet_summary":"[\"one\",\"two\"]"}`,
			short:      "S",
			structured: true,
			points:     []string{"one", "two"},
		},
		{
			name:       "points as bullet text",
			body:       `{"short_summary":"S","detailed_bullet_summary":"- one\n• two\n\n3. three"}`,
			short:      "S",
			structured: false,
			points:     []string{"one", "two", "three"},
		},
		{
			name:       "malformed array text falls back to raw text",
			body:       `{"short_summary":"S","detailed_bullet_summary":"[\"one\", two"}`,
			short:      "S",
			structured: false,
			points:     []string{"[\"one\", two"},
		},
		{
			name:       "missing points",
			body:       `{"short_summary":"S"}`,
			short:      "S",
			structured: true,
			points:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeSummary([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.short, s.ShortSummary)
			assert.Equal(t, tt.structured, s.Detailed.IsStructured())
			assert.Equal(t, tt.points, s.Detailed.Points())
		})
	}
}

func TestDecodeSummary_ErrorField(t *testing.T) {
	_, err := DecodeSummary([]byte(`{"error":"model overloaded"}`))
	require.Error(t, err)
	assert.True(t, IsGatewayError(err))
	assert.Contains(t, err.Error(), "model overloaded")

	s, err := DecodeSummary([]byte(`{"error":null,"short_summary":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", s.ShortSummary)
}

func TestDecodeSummary_NotJSON(t *testing.T) {
	_, err := DecodeSummary([]byte("Internal Server Error"))
	assert.Error(t, err)

	_, err = DecodeSummary([]byte(`["a"]`))
	assert.Error(t, err)
}

func TestDecodeAssessment(t *testing.T) {
	body := `"{\"financial_vulnerability\": true, \"vulnerability_reason\": \"lost job\", \"vulnerability_snippet\": \"I lost my job\", \"complaint\": \"yes\", \"complaint_reason\": \"late refund\"}"`

	a, err := DecodeAssessment([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, &ContactAssessment{
		FinancialVulnerability: true,
		VulnerabilityReason:    "lost job",
		VulnerabilitySnippet:   "I lost my job",
		Complaint:              true,
		ComplaintReason:        "late refund",
	}, a)

	_, err = DecodeAssessment([]byte(`{"error":"bad request"}`))
	assert.True(t, IsGatewayError(err))
}

func TestSplitBullets(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitBullets("* a\n  - b\n2) c\n"))
	assert.Empty(t, SplitBullets("\n \n"))
	assert.Empty(t, SplitBullets("-\n•"))
}

func TestSplitBullets_KeepsMarkdownEmphasis(t *testing.T) {
	assert.Equal(t, []string{
		"**Billing**: customer disputed a charge",
		"*urgent* follow-up",
		"**Outcome**: refund issued",
		"-5 balance noted",
	}, SplitBullets("**Billing**: customer disputed a charge\n* *urgent* follow-up\n- **Outcome**: refund issued\n-5 balance noted"))
}
