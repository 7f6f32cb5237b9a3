package entity

import "time"

type Todo struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Text      string     `json:"text" gorm:"size:300;not null"`
	Complete  bool       `json:"complete" gorm:"not null;default:false"`
	DueDate   *time.Time `json:"dueDate" gorm:"type:date"`
	CreatedAt time.Time  `json:"createdDate"`
	UserID    uint       `json:"-" gorm:"not null;index"`
	Tags      []Tag      `json:"tags" gorm:"many2many:todo_tags"`
}

// DateOf strips the time-of-day component and normalizes the calendar date
// to UTC. Due dates arrive in UTC from the store while "now" carries the
// process's local zone; pinning both to one zone makes date comparisons
// compare year, month and day instead of instants.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsOverdue reports whether the todo has a due date strictly before today and
// is still open. Completed todos are never overdue, whatever their date.
func (t *Todo) IsOverdue(today time.Time) bool {
	if t.Complete || t.DueDate == nil {
		return false
	}
	return DateOf(*t.DueDate).Before(DateOf(today))
}

// IsDueToday reports whether the todo is open and due on the current date.
func (t *Todo) IsDueToday(today time.Time) bool {
	if t.Complete || t.DueDate == nil {
		return false
	}
	return DateOf(*t.DueDate).Equal(DateOf(today))
}
