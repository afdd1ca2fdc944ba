package domain

// StatusUnclassified is assigned when the classifier returns no classification.
const StatusUnclassified = "unclassified"

// Document is the authoritative relational row. Status is a snapshot of the
// classification at creation time and is never recomputed.
type Document struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Status  string `json:"status"`
	CaseID  *int64 `json:"case_id"`
}
