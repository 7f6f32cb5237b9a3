package reminder

import (
	"errors"
	"testing"
	"time"

	"todo-api/internal/domain/model"
)

type fakeReminderGateway struct {
	candidates []model.ReminderCandidate
	err        error
}

func (f *fakeReminderGateway) FindCandidates() ([]model.ReminderCandidate, error) {
	return f.candidates, f.err
}

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) SendReminder(recipient, todoText string, dueDate time.Time) error {
	if err, ok := f.failFor[recipient]; ok {
		return err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func TestSendDueRemindersSelection(t *testing.T) {
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	dayAfter := time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)

	gateway := &fakeReminderGateway{candidates: []model.ReminderCandidate{
		{TodoID: 1, Text: "due tomorrow", DueDate: tomorrow, Email: "a@example.com"},
		{TodoID: 2, Text: "due tomorrow but done", DueDate: tomorrow, Complete: true, Email: "b@example.com"},
		{TodoID: 3, Text: "due today", DueDate: today, Email: "c@example.com"},
		{TodoID: 4, Text: "due day after", DueDate: dayAfter, Email: "d@example.com"},
	}}
	sender := &fakeSender{}
	uc := NewReminderUseCase(gateway, sender)

	if err := uc.SendDueReminders(now); err != nil {
		t.Fatalf("SendDueReminders failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("reminders sent: got %d, want 1", len(sender.sent))
	}
	if sender.sent[0] != "a@example.com" {
		t.Errorf("recipient: got %s, want a@example.com", sender.sent[0])
	}
}

func TestSendDueRemindersIgnoresTimeOfDay(t *testing.T) {
	// A due date stored with a time component still matches the calendar day.
	now := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	due := time.Date(2024, time.March, 16, 14, 30, 0, 0, time.UTC)

	gateway := &fakeReminderGateway{candidates: []model.ReminderCandidate{
		{TodoID: 1, Text: "afternoon slot", DueDate: due, Email: "a@example.com"},
	}}
	sender := &fakeSender{}
	uc := NewReminderUseCase(gateway, sender)

	if err := uc.SendDueReminders(now); err != nil {
		t.Fatalf("SendDueReminders failed: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Errorf("reminders sent: got %d, want 1", len(sender.sent))
	}
}

func TestSendDueRemindersInLocalTimezone(t *testing.T) {
	// Due dates are stored in UTC; the batch clock carries the host's zone.
	// A job running in any zone must still match tomorrow's calendar day.
	zones := []*time.Location{
		time.FixedZone("UTC+2", 2*3600),
		time.FixedZone("UTC-5", -5*3600),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			now := time.Date(2024, time.March, 15, 8, 0, 0, 0, zone)
			due := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

			gateway := &fakeReminderGateway{candidates: []model.ReminderCandidate{
				{TodoID: 1, Text: "due tomorrow", DueDate: due, Email: "a@example.com"},
			}}
			sender := &fakeSender{}
			uc := NewReminderUseCase(gateway, sender)

			if err := uc.SendDueReminders(now); err != nil {
				t.Fatalf("SendDueReminders failed: %v", err)
			}
			if len(sender.sent) != 1 {
				t.Errorf("reminders sent: got %d, want 1", len(sender.sent))
			}
		})
	}
}

func TestSendDueRemindersFailureIsolation(t *testing.T) {
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

	gateway := &fakeReminderGateway{candidates: []model.ReminderCandidate{
		{TodoID: 1, Text: "first", DueDate: tomorrow, Email: "a@example.com"},
		{TodoID: 2, Text: "second", DueDate: tomorrow, Email: "broken@example.com"},
		{TodoID: 3, Text: "third", DueDate: tomorrow, Email: "c@example.com"},
	}}
	sender := &fakeSender{failFor: map[string]error{
		"broken@example.com": errors.New("smtp down"),
	}}
	uc := NewReminderUseCase(gateway, sender)

	if err := uc.SendDueReminders(now); err != nil {
		t.Fatalf("a single delivery failure must not fail the pass: %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("reminders sent: got %d, want 2", len(sender.sent))
	}
	if sender.sent[0] != "a@example.com" || sender.sent[1] != "c@example.com" {
		t.Errorf("recipients: got %v", sender.sent)
	}
}

func TestSendDueRemindersGatewayError(t *testing.T) {
	gateway := &fakeReminderGateway{err: errors.New("connection refused")}
	sender := &fakeSender{}
	uc := NewReminderUseCase(gateway, sender)

	if err := uc.SendDueReminders(time.Now()); err == nil {
		t.Fatal("expected error when the candidate read fails")
	}
	if len(sender.sent) != 0 {
		t.Errorf("no reminders may go out on a failed read: got %v", sender.sent)
	}
}
