package contact

// ListContactsRequest pages through uploaded contacts
type ListContactsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// FeedbackRequest is one evaluator's verdict on a contact
type FeedbackRequest struct {
	Evaluator              string `json:"evaluator" validate:"notblank"`
	ComplaintsFlag         bool   `json:"complaints_flag"`
	VulnerabilityFlag      bool   `json:"vulnerability_flag"`
	ComplaintsReasoning    string `json:"complaints_reasoning"`
	VulnerabilityReasoning string `json:"vulnerability_reasoning"`
}
