package domain

const CaseStatusOpen = "open"

// Case groups documents under one legal matter.
type Case struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
