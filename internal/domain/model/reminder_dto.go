package model

import "time"

// ReminderCandidate is one row of the batch job's snapshot read: a todo with
// a due date joined to its owner's email. The selector applies the
// due-tomorrow and not-complete predicates on top of it.
type ReminderCandidate struct {
	TodoID   uint
	Text     string
	DueDate  time.Time
	Complete bool
	Email    string
}
