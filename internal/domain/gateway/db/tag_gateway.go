package db

import (
	"todo-api/internal/domain/entity"
)

type TagGateway interface {
	FindAll() ([]entity.Tag, error)
	CountAll() (int64, error)
	Create(tag entity.Tag) (*entity.Tag, error)
}
