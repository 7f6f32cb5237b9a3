package db

import (
	"todo-api/internal/domain/entity"
)

// TodoGateway is the store boundary for todos. Every read and mutation is
// scoped to the owning user; a missing or foreign-owned id is a silent no-op
// on mutations, never an error.
type TodoGateway interface {
	FindAllByOwner(ownerID uint, search string) ([]entity.Todo, error)
	FindByIDAndOwner(id uint, ownerID uint) (*entity.Todo, error)

	Create(todo entity.Todo, tagIDs []uint) (*entity.Todo, error)
	Complete(id uint, ownerID uint) error
	DeleteByIDAndOwner(id uint, ownerID uint) error
}
