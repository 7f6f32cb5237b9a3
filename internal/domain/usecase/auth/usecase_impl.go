package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

// ErrInvalidCredentials covers both unknown username and wrong password, so
// login responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

type authUseCase struct {
	gateway   db.UserGateway
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(gateway db.UserGateway, jwtSecret []byte, tokenTTL time.Duration) UseCase {
	return &authUseCase{
		gateway:   gateway,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (uc *authUseCase) Register(dto model.RegisterDTO) (*entity.User, error) {
	username := strings.TrimSpace(dto.Username)
	email := strings.TrimSpace(dto.Email)

	if username == "" || email == "" || dto.Password == "" {
		return nil, model.NewValidationError(msg.GetMessage("auth.error.missing-fields"))
	}

	existing, err := uc.gateway.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing == nil {
		existing, err = uc.gateway.FindByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}
	if existing != nil {
		return nil, model.NewValidationError(msg.GetMessage("auth.error.taken"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	created, err := uc.gateway.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (uc *authUseCase) Login(dto model.LoginDTO) (string, error) {
	user, err := uc.gateway.FindByUsername(dto.Username)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(uc.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
