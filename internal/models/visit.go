package models

import "time"

// Visit is a user-authored journal entry for one waterfall. At most one
// visit exists per waterfall id; its existence is the sole "visited"
// signal shown on list cards.
type Visit struct {
	VisitDate    time.Time `json:"visitDate"`
	JournalNotes string    `json:"journalNotes"`
}

// NewVisit returns the default visit shown when no stored record exists:
// date now, empty notes.
func NewVisit(now time.Time) Visit {
	return Visit{VisitDate: now, JournalNotes: ""}
}
