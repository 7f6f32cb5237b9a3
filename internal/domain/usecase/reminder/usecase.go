package reminder

import "time"

type UseCase interface {
	// SendDueReminders runs one reminder pass: it selects every open todo due
	// on the calendar day after now and emails its owner once per todo.
	SendDueReminders(now time.Time) error
}
