package domain

// SearchHit is one flattened result from the search mirror. ID is the textual
// form of the document id used as the index key.
type SearchHit struct {
	ID      string  `json:"id"`
	Score   float64 `json:"score"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Status  string  `json:"status"`
	CaseID  *int64  `json:"case_id"`
}

// MirrorEntry is the denormalized projection of a document written into the
// search mirror. It shares the document's lifecycle without a transactional
// coupling; a failed mirror write leaves the row authoritative and the entry
// absent until reindexed.
type MirrorEntry struct {
	ID      int64  `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	CaseID  *int64 `json:"case_id"`
}
