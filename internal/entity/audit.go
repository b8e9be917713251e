package entity

// AuditReport is the structured website audit produced for one lead.
type AuditReport struct {
	OverallScore     float64           `json:"overallScore"`
	Summary          string            `json:"summary"`
	Categories       []AuditCategory   `json:"categories"`
	KeyFindings      []AuditFinding    `json:"keyFindings"`
	Roadmap          []RoadmapPhase    `json:"roadmap"`
	TechnicalDetails []TechnicalDetail `json:"technicalDetails"`
}

// AuditCategory scores one audit dimension on a 0-10 scale.
type AuditCategory struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Status string  `json:"status"` // Good, Fair or Poor
}

// AuditFinding is a single observation, either an issue or a strength.
type AuditFinding struct {
	Type string `json:"type"` // issue or good
	Text string `json:"text"`
}

// RoadmapPhase groups remediation items.
type RoadmapPhase struct {
	Phase string   `json:"phase"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// TechnicalDetail reports one technical check.
type TechnicalDetail struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Status string `json:"status"` // pass, fail or warning
}
