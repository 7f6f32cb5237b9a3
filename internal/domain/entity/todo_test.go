package entity

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDateOf(t *testing.T) {
	in := time.Date(2024, time.March, 15, 23, 45, 12, 999, time.UTC)
	got := DateOf(in)
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("DateOf: got %v, want %v", got, want)
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		todo Todo
		want bool
	}{
		{"due yesterday and open", Todo{DueDate: date(2024, time.March, 14)}, true},
		{"due long ago and open", Todo{DueDate: date(2023, time.January, 1)}, true},
		{"due today", Todo{DueDate: date(2024, time.March, 15)}, false},
		{"due tomorrow", Todo{DueDate: date(2024, time.March, 16)}, false},
		{"due yesterday but complete", Todo{Complete: true, DueDate: date(2024, time.March, 14)}, false},
		{"no due date", Todo{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.todo.IsOverdue(today); got != tt.want {
				t.Errorf("IsOverdue: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDueToday(t *testing.T) {
	today := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name string
		todo Todo
		want bool
	}{
		{"due today and open", Todo{DueDate: date(2024, time.March, 15)}, true},
		{"due yesterday", Todo{DueDate: date(2024, time.March, 14)}, false},
		{"due tomorrow", Todo{DueDate: date(2024, time.March, 16)}, false},
		{"due today but complete", Todo{Complete: true, DueDate: date(2024, time.March, 15)}, false},
		{"no due date", Todo{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.todo.IsDueToday(today); got != tt.want {
				t.Errorf("IsDueToday: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassificationAcrossTimezones(t *testing.T) {
	// Due dates come out of the store in UTC; the clock carries the process's
	// local zone. The same calendar day must classify the same everywhere.
	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+2", 2*3600),
		time.FixedZone("UTC-5", -5*3600),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			todo := Todo{DueDate: &due}
			today := time.Date(2024, time.March, 15, 10, 0, 0, 0, zone)

			if todo.IsOverdue(today) {
				t.Error("todo due today classified overdue")
			}
			if !todo.IsDueToday(today) {
				t.Error("todo due today not classified due today")
			}

			nextDay := time.Date(2024, time.March, 16, 10, 0, 0, 0, zone)
			if !todo.IsOverdue(nextDay) {
				t.Error("todo due yesterday not classified overdue")
			}
		})
	}
}

func TestOverdueAndDueTodayAreExclusive(t *testing.T) {
	today := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	for day := 10; day <= 20; day++ {
		todo := Todo{DueDate: date(2024, time.March, day)}
		if todo.IsOverdue(today) && todo.IsDueToday(today) {
			t.Errorf("todo due %d classified both overdue and due today", day)
		}
	}
}
