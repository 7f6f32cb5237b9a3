package mail

import "time"

// Sender delivers one reminder email. Implementations report failure per
// call; the reminder batch logs and skips, it never aborts on a bad send.
type Sender interface {
	SendReminder(recipient string, todoText string, dueDate time.Time) error
}
