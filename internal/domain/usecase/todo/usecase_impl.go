package todo

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const dateLayout = "2006-01-02"

// calendarTitleLimit is the truncation length for calendar event titles. The
// JSON feed keeps the full text; the two projections are deliberately
// different consumers.
const calendarTitleLimit = 50

const (
	colorComplete = "#27ae60"
	colorOverdue  = "#e74c3c"
	colorDefault  = "#3498db"
)

// maxDueDate is the sort sentinel for todos without a due date, pushing them
// behind every dated todo.
var maxDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

var defaultTags = []entity.Tag{
	{Name: "Work", Color: "#e74c3c"},
	{Name: "Personal", Color: "#3498db"},
	{Name: "Urgent", Color: "#f39c12"},
}

type todoUseCase struct {
	todoGateway db.TodoGateway
	tagGateway  db.TagGateway
}

func NewTodoUseCase(todoGateway db.TodoGateway, tagGateway db.TagGateway) UseCase {
	return &todoUseCase{
		todoGateway: todoGateway,
		tagGateway:  tagGateway,
	}
}

// FindAll fetches the user's todos and the tag catalog in parallel, then
// orders the todos for display.
func (uc *todoUseCase) FindAll(ownerID uint, search string) (*model.TodoListDTO, error) {
	var wg sync.WaitGroup
	var todos []entity.Todo
	var tags []entity.Tag
	var todosErr, tagsErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		todos, todosErr = uc.todoGateway.FindAllByOwner(ownerID, strings.TrimSpace(search))
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		tags, tagsErr = uc.tagGateway.FindAll()
	}()

	wg.Wait()

	if todosErr != nil {
		return nil, fmt.Errorf("failed to find todos: %w", todosErr)
	}
	if tagsErr != nil {
		return nil, fmt.Errorf("failed to find tags: %w", tagsErr)
	}

	sortTodos(todos)

	return &model.TodoListDTO{Todos: todos, Tags: tags}, nil
}

// sortTodos orders todos for display: incomplete before complete, then due
// date ascending with undated todos last, newest first on equal dates.
func sortTodos(todos []entity.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		if a.Complete != b.Complete {
			return !a.Complete
		}

		dueA, dueB := dueOrMax(a), dueOrMax(b)
		if !dueA.Equal(dueB) {
			return dueA.Before(dueB)
		}

		return a.ID > b.ID
	})
}

func dueOrMax(t entity.Todo) time.Time {
	if t.DueDate == nil {
		return maxDueDate
	}
	return entity.DateOf(*t.DueDate)
}

func (uc *todoUseCase) Create(ownerID uint, dto model.CreateTodoDTO) (*entity.Todo, error) {
	text := strings.TrimSpace(dto.Text)
	if text == "" {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.empty-text"))
	}

	var dueDate *time.Time
	if dto.DueDate != "" {
		parsed, err := time.Parse(dateLayout, dto.DueDate)
		if err != nil {
			return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-due-date", dto.DueDate))
		}
		dueDate = &parsed
	}

	todo := entity.Todo{
		Text:      text,
		Complete:  false,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
		UserID:    ownerID,
	}

	created, err := uc.todoGateway.Create(todo, dto.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return created, nil
}

func (uc *todoUseCase) Complete(ownerID uint, todoID uint) error {
	return uc.todoGateway.Complete(todoID, ownerID)
}

func (uc *todoUseCase) Delete(ownerID uint, todoID uint) error {
	return uc.todoGateway.DeleteByIDAndOwner(todoID, ownerID)
}

// CalendarEvents maps every dated todo to a calendar event. Classification
// runs against the current date on every call; overdue flips at midnight.
func (uc *todoUseCase) CalendarEvents(ownerID uint) ([]model.CalendarEventDTO, error) {
	todos, err := uc.todoGateway.FindAllByOwner(ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to find todos: %w", err)
	}

	now := time.Now()
	events := make([]model.CalendarEventDTO, 0, len(todos))
	for _, t := range todos {
		if t.DueDate == nil {
			continue
		}

		title := truncateTitle(t.Text, calendarTitleLimit)
		if t.Complete {
			title += " ✓"
		}

		events = append(events, model.CalendarEventDTO{
			Title: title,
			Start: t.DueDate.Format(dateLayout),
			Color: eventColor(&t, now),
		})
	}
	return events, nil
}

// APIEvents maps every dated todo to the all-day JSON feed entry.
func (uc *todoUseCase) APIEvents(ownerID uint) ([]model.APIEventDTO, error) {
	todos, err := uc.todoGateway.FindAllByOwner(ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to find todos: %w", err)
	}

	events := make([]model.APIEventDTO, 0, len(todos))
	for _, t := range todos {
		if t.DueDate == nil {
			continue
		}
		events = append(events, model.APIEventDTO{
			Title:  t.Text,
			Start:  t.DueDate.Format(dateLayout),
			AllDay: true,
		})
	}
	return events, nil
}

func (uc *todoUseCase) Tags() ([]entity.Tag, error) {
	return uc.tagGateway.FindAll()
}

// SeedDefaultTags installs the starter catalog on an empty store so new
// installations have something to attach.
func (uc *todoUseCase) SeedDefaultTags() error {
	count, err := uc.tagGateway.CountAll()
	if err != nil {
		return fmt.Errorf("failed to count tags: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, tag := range defaultTags {
		if _, err := uc.tagGateway.Create(tag); err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", tag.Name, err)
		}
	}

	log.Infof("Seeded %d default tags", len(defaultTags))
	return nil
}

func eventColor(t *entity.Todo, now time.Time) string {
	switch {
	case t.Complete:
		return colorComplete
	case t.IsOverdue(now):
		return colorOverdue
	default:
		return colorDefault
	}
}

func truncateTitle(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
