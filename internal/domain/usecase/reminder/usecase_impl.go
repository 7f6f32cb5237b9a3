package reminder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/mail"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type reminderUseCase struct {
	gateway db.ReminderGateway
	sender  mail.Sender
}

func NewReminderUseCase(gateway db.ReminderGateway, sender mail.Sender) UseCase {
	return &reminderUseCase{
		gateway: gateway,
		sender:  sender,
	}
}

// SendDueReminders selects todos due tomorrow from a single snapshot read and
// notifies each owner once. Delivery failures are logged per todo and never
// abort the pass. There is no cross-run dedup: running twice on the same day
// re-sends the same reminders.
func (uc *reminderUseCase) SendDueReminders(now time.Time) error {
	tomorrow := entity.DateOf(now).AddDate(0, 0, 1)

	candidates, err := uc.gateway.FindCandidates()
	if err != nil {
		return fmt.Errorf("failed to read reminder candidates: %w", err)
	}

	sent, failed := 0, 0
	for _, c := range candidates {
		if c.Complete || !entity.DateOf(c.DueDate).Equal(tomorrow) {
			continue
		}

		if err := uc.sender.SendReminder(c.Email, c.Text, c.DueDate); err != nil {
			failed++
			log.Error(msg.GetMessage("reminder.error.delivery-failed", c.TodoID),
				zap.Uint("todo_id", c.TodoID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	log.Infof("Reminder pass for %s finished: %d sent, %d failed", tomorrow.Format("2006-01-02"), sent, failed)
	return nil
}
