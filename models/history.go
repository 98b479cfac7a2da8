package models

// HistoryEntry is a snapshot of a winning candidate plus the moment it was
// picked, stored newest-first in the history log
type HistoryEntry struct {
	Candidate Candidate `json:"candidate"`
	Timestamp string    `json:"timestamp"`
}
