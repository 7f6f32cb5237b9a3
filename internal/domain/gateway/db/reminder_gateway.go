package db

import (
	"todo-api/internal/domain/model"
)

// ReminderGateway is the batch process's read-only view of the store: every
// todo that carries a due date, joined to its owner's email, across all
// users. The reminder selector applies the eligibility predicates on top.
type ReminderGateway interface {
	FindCandidates() ([]model.ReminderCandidate, error)
}
