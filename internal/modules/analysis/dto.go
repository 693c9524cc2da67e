package analysis

// GeneratedBy values distinguish model output from the built-in fallback.
const (
	GeneratedByAI       = "ai"
	GeneratedByFallback = "deterministic"
)

type AnalysisResult struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
	CostNote        string   `json:"cost_note"`
	Tips            []string `json:"tips"`
	GeneratedBy     string   `json:"generated_by"`
}

type ReportResult struct {
	Report      string `json:"report"`
	GeneratedBy string `json:"generated_by"`
}
