package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// FindAll returns the user's todos in display order plus the tag catalog.
	// Search is an optional case-insensitive substring filter on the text.
	FindAll(ownerID uint, search string) (*model.TodoListDTO, error)

	// Create validates and persists a new todo with optional due date and tags
	Create(ownerID uint, dto model.CreateTodoDTO) (*entity.Todo, error)

	// Complete marks the todo done; a missing or foreign id is a silent no-op
	Complete(ownerID uint, todoID uint) error

	// Delete removes the todo and its tag links; missing id is a silent no-op
	Delete(ownerID uint, todoID uint) error

	// CalendarEvents projects dated todos into calendar events with truncated
	// titles and classification colors
	CalendarEvents(ownerID uint) ([]model.CalendarEventDTO, error)

	// APIEvents projects dated todos into the all-day JSON feed with full titles
	APIEvents(ownerID uint) ([]model.APIEventDTO, error)

	// Tags returns the full tag catalog
	Tags() ([]entity.Tag, error)

	// SeedDefaultTags installs the starter tag catalog when the store is empty
	SeedDefaultTags() error
}
