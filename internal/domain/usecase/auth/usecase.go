package auth

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Register creates a new user with a hashed password
	Register(dto model.RegisterDTO) (*entity.User, error)

	// Login verifies credentials and returns a signed token
	Login(dto model.LoginDTO) (string, error)
}
