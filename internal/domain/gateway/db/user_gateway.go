package db

import (
	"todo-api/internal/domain/entity"
)

type UserGateway interface {
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(user entity.User) (*entity.User, error)
}
