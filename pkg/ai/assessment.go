package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ContactAssessment is the contact-assessment result
type ContactAssessment struct {
	FinancialVulnerability bool   `json:"financial_vulnerability"`
	VulnerabilityReason    string `json:"vulnerability_reason"`
	VulnerabilitySnippet   string `json:"vulnerability_snippet"`
	Complaint              bool   `json:"complaint"`
	ComplaintReason        string `json:"complaint_reason"`
	ComplaintSnippet       string `json:"complaint_snippet"`
}

// DecodeAssessment parses a contact-assessment body with the same tolerance
// as DecodeSummary. Flags may arrive as booleans or as "true"/"yes" strings.
func DecodeAssessment(body []byte) (*ContactAssessment, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse assessment response: %w", err)
	}
	if err := gatewayError(obj); err != nil {
		return nil, err
	}

	a := &ContactAssessment{
		FinancialVulnerability: flag(obj["financial_vulnerability"]),
		VulnerabilityReason:    text(obj["vulnerability_reason"]),
		VulnerabilitySnippet:   text(obj["vulnerability_snippet"]),
		Complaint:              flag(obj["complaint"]),
		ComplaintReason:        text(obj["complaint_reason"]),
		ComplaintSnippet:       text(obj["complaint_snippet"]),
	}
	return a, nil
}

func flag(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(text(raw)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

func text(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
