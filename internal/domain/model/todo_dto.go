package model

import "todo-api/internal/domain/entity"

type CreateTodoDTO struct {
	Text    string `json:"text"`
	DueDate string `json:"dueDate"`
	TagIDs  []uint `json:"tagIds"`
}

// TodoListDTO is the list view payload: the caller's todos in display order
// plus the full tag catalog.
type TodoListDTO struct {
	Todos []entity.Todo `json:"todos"`
	Tags  []entity.Tag  `json:"tags"`
}
