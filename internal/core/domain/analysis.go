package domain

const (
	ClassContract = "contract"
	ClassMotion   = "motion"
	ClassJudgment = "judgment"
	ClassMemo     = "memo"
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Analysis is the classifier output for one piece of content. It is ephemeral:
// only Classification survives into Document.Status.
type Analysis struct {
	Summary        string   `json:"summary"`
	Entities       []string `json:"entities"`
	Classification string   `json:"classification"`
	Risk           string   `json:"risk"`
}
