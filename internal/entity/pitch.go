package entity

// PitchSentinel fills subject and body when generation fails for a lead.
const PitchSentinel = "Error"

// PitchResult carries a copy of the lead plus the generated email.
type PitchResult struct {
	Lead
	LeadScoreValue  int    `json:"lead_score"`
	ConfidenceLevel string `json:"confidence_level"`
	PrimaryIssue    string `json:"primary_issue"`
	ServiceToPitch  string `json:"service_to_pitch"`
	EmailSubject    string `json:"email_subject"`
	EmailBody       string `json:"email_body"`
	// Err is set when the model call or decode failed for this lead.
	Err error `json:"-"`
	// Failure mirrors Err for JSON consumers.
	Failure string `json:"error,omitempty"`
}

// Failed reports whether the pitch is a sentinel.
func (p PitchResult) Failed() bool {
	return p.Err != nil
}
