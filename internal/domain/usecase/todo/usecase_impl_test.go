package todo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type fakeTodoGateway struct {
	todos   []entity.Todo
	created []entity.Todo
	search  string
	err     error
}

func (f *fakeTodoGateway) FindAllByOwner(ownerID uint, search string) ([]entity.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.search = search
	out := make([]entity.Todo, 0, len(f.todos))
	for _, t := range f.todos {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTodoGateway) FindByIDAndOwner(id uint, ownerID uint) (*entity.Todo, error) {
	for i := range f.todos {
		if f.todos[i].ID == id && f.todos[i].UserID == ownerID {
			return &f.todos[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTodoGateway) Create(todo entity.Todo, tagIDs []uint) (*entity.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	todo.ID = uint(len(f.created) + 1)
	f.created = append(f.created, todo)
	return &todo, nil
}

func (f *fakeTodoGateway) Complete(id uint, ownerID uint) error {
	return f.err
}

func (f *fakeTodoGateway) DeleteByIDAndOwner(id uint, ownerID uint) error {
	return f.err
}

type fakeTagGateway struct {
	tags    []entity.Tag
	created []entity.Tag
	err     error
}

func (f *fakeTagGateway) FindAll() ([]entity.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tags, nil
}

func (f *fakeTagGateway) CountAll() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.tags) + len(f.created)), nil
}

func (f *fakeTagGateway) Create(tag entity.Tag) (*entity.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	tag.ID = uint(len(f.created) + 1)
	f.created = append(f.created, tag)
	return &tag, nil
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFindAllOrder(t *testing.T) {
	gateway := &fakeTodoGateway{todos: []entity.Todo{
		{ID: 1, Text: "done early", Complete: true, DueDate: datePtr(2024, time.January, 1), UserID: 7},
		{ID: 2, Text: "no due date", UserID: 7},
		{ID: 3, Text: "due soon", DueDate: datePtr(2024, time.January, 5), UserID: 7},
		{ID: 4, Text: "due soon too", DueDate: datePtr(2024, time.January, 5), UserID: 7},
		{ID: 5, Text: "someone else's", DueDate: datePtr(2024, time.January, 2), UserID: 8},
	}}
	uc := NewTodoUseCase(gateway, &fakeTagGateway{})

	list, err := uc.FindAll(7, "")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	gotIDs := make([]uint, 0, len(list.Todos))
	for _, todo := range list.Todos {
		gotIDs = append(gotIDs, todo.ID)
	}

	// Open todos first by ascending due date, newest wins ties, undated last,
	// completed todos at the end.
	wantIDs := []uint{4, 3, 2, 1}
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("todo count: got %d, want %d", len(gotIDs), len(wantIDs))
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("position %d: got id %d, want %d", i, gotIDs[i], wantIDs[i])
		}
	}
}

func TestFindAllTrimsSearch(t *testing.T) {
	gateway := &fakeTodoGateway{}
	uc := NewTodoUseCase(gateway, &fakeTagGateway{})

	if _, err := uc.FindAll(1, "  milk  "); err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if gateway.search != "milk" {
		t.Errorf("search passed to gateway: got %q, want %q", gateway.search, "milk")
	}
}

func TestFindAllIncludesTagCatalog(t *testing.T) {
	tags := &fakeTagGateway{tags: []entity.Tag{{ID: 1, Name: "Work", Color: "#e74c3c"}}}
	uc := NewTodoUseCase(&fakeTodoGateway{}, tags)

	list, err := uc.FindAll(1, "")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(list.Tags) != 1 || list.Tags[0].Name != "Work" {
		t.Errorf("tag catalog: got %+v", list.Tags)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		dto  model.CreateTodoDTO
	}{
		{"empty text", model.CreateTodoDTO{Text: ""}},
		{"whitespace text", model.CreateTodoDTO{Text: "   "}},
		{"bad due date", model.CreateTodoDTO{Text: "buy milk", DueDate: "not-a-date"}},
		{"wrong date format", model.CreateTodoDTO{Text: "buy milk", DueDate: "15/03/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeTodoGateway{}
			uc := NewTodoUseCase(gateway, &fakeTagGateway{})

			_, err := uc.Create(1, tt.dto)

			var validationErr *model.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(gateway.created) != 0 {
				t.Errorf("rejected todo reached the store: %+v", gateway.created)
			}
		})
	}
}

func TestCreatePersistsTrimmedText(t *testing.T) {
	gateway := &fakeTodoGateway{}
	uc := NewTodoUseCase(gateway, &fakeTagGateway{})

	created, err := uc.Create(7, model.CreateTodoDTO{Text: "  buy milk  ", DueDate: "2024-03-15"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Text != "buy milk" {
		t.Errorf("text: got %q, want %q", created.Text, "buy milk")
	}
	if created.Complete {
		t.Error("new todo must start incomplete")
	}
	if created.UserID != 7 {
		t.Errorf("owner: got %d, want 7", created.UserID)
	}
	if created.DueDate == nil || created.DueDate.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("due date: got %v", created.DueDate)
	}
}

func TestCreateWithoutDueDate(t *testing.T) {
	uc := NewTodoUseCase(&fakeTodoGateway{}, &fakeTagGateway{})

	created, err := uc.Create(1, model.CreateTodoDTO{Text: "someday"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.DueDate != nil {
		t.Errorf("due date: got %v, want nil", created.DueDate)
	}
}

func TestCalendarEvents(t *testing.T) {
	yesterday := entity.DateOf(time.Now()).AddDate(0, 0, -1)
	tomorrow := entity.DateOf(time.Now()).AddDate(0, 0, 1)
	longText := strings.Repeat("x", 60)

	gateway := &fakeTodoGateway{todos: []entity.Todo{
		{ID: 1, Text: "undated", UserID: 1},
		{ID: 2, Text: "late", DueDate: &yesterday, UserID: 1},
		{ID: 3, Text: "upcoming", DueDate: &tomorrow, UserID: 1},
		{ID: 4, Text: "finished", Complete: true, DueDate: &yesterday, UserID: 1},
		{ID: 5, Text: longText, DueDate: &tomorrow, UserID: 1},
	}}
	uc := NewTodoUseCase(gateway, &fakeTagGateway{})

	events, err := uc.CalendarEvents(1)
	if err != nil {
		t.Fatalf("CalendarEvents failed: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("event count: got %d, want 4 (undated todos excluded)", len(events))
	}

	byTitle := make(map[string]model.CalendarEventDTO)
	for _, e := range events {
		byTitle[e.Title] = e
	}

	if e, ok := byTitle["late"]; !ok || e.Color != "#e74c3c" {
		t.Errorf("overdue event: got %+v", e)
	}
	if e, ok := byTitle["upcoming"]; !ok || e.Color != "#3498db" {
		t.Errorf("upcoming event: got %+v", e)
	}
	if e, ok := byTitle["finished ✓"]; !ok || e.Color != "#27ae60" {
		t.Errorf("completed event: got %+v", e)
	}

	truncated := strings.Repeat("x", 50)
	if e, ok := byTitle[truncated]; !ok {
		t.Errorf("long title not truncated to 50 runes: %v", e)
	}

	if e := byTitle["upcoming"]; e.Start != tomorrow.Format("2006-01-02") {
		t.Errorf("start date: got %q", e.Start)
	}
}

func TestAPIEventsKeepFullTitles(t *testing.T) {
	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	longText := strings.Repeat("y", 80)

	gateway := &fakeTodoGateway{todos: []entity.Todo{
		{ID: 1, Text: longText, DueDate: &due, UserID: 1},
		{ID: 2, Text: "undated", UserID: 1},
	}}
	uc := NewTodoUseCase(gateway, &fakeTagGateway{})

	events, err := uc.APIEvents(1)
	if err != nil {
		t.Fatalf("APIEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("event count: got %d, want 1", len(events))
	}
	if events[0].Title != longText {
		t.Errorf("title must not be truncated: got %d runes", len([]rune(events[0].Title)))
	}
	if !events[0].AllDay {
		t.Error("api events must be all-day")
	}
	if events[0].Start != "2024-03-15" {
		t.Errorf("start: got %q, want 2024-03-15", events[0].Start)
	}
}

func TestSeedDefaultTags(t *testing.T) {
	tags := &fakeTagGateway{}
	uc := NewTodoUseCase(&fakeTodoGateway{}, tags)

	if err := uc.SeedDefaultTags(); err != nil {
		t.Fatalf("SeedDefaultTags failed: %v", err)
	}
	if len(tags.created) != 3 {
		t.Fatalf("seeded tags: got %d, want 3", len(tags.created))
	}
	if tags.created[0].Name != "Work" || tags.created[0].Color != "#e74c3c" {
		t.Errorf("first seeded tag: got %+v", tags.created[0])
	}

	// A second call must not duplicate the catalog.
	if err := uc.SeedDefaultTags(); err != nil {
		t.Fatalf("second SeedDefaultTags failed: %v", err)
	}
	if len(tags.created) != 3 {
		t.Errorf("seeding is not idempotent: got %d tags", len(tags.created))
	}
}

func TestSeedDefaultTagsSkipsNonEmptyCatalog(t *testing.T) {
	tags := &fakeTagGateway{tags: []entity.Tag{{ID: 1, Name: "Existing"}}}
	uc := NewTodoUseCase(&fakeTodoGateway{}, tags)

	if err := uc.SeedDefaultTags(); err != nil {
		t.Fatalf("SeedDefaultTags failed: %v", err)
	}
	if len(tags.created) != 0 {
		t.Errorf("non-empty catalog must not be reseeded: got %d new tags", len(tags.created))
	}
}
