package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/register", controller.Register)
	controller.api.POST("/auth/login", controller.Login)
}

// Register godoc
// @Summary Register a new user
// @Description Create a new account with username, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.RegisterDTO true "Registration data"
// @Success 201 {object} entity.User "Created user"
// @Failure 400 {object} map[string]string "Invalid registration data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (controller *AuthController) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := controller.useCase.Register(dto)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Login credentials"
// @Success 200 {object} model.TokenDTO "Signed token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	token, err := controller.useCase.Login(dto)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, model.TokenDTO{Token: token})
}
