package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo, calendar and tag routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.POST("/todos", controller.Create)
	controller.api.PATCH("/todos/:id/complete", controller.Complete)
	controller.api.DELETE("/todos/:id", controller.Delete)
	controller.api.GET("/calendar/events", controller.CalendarEvents)
	controller.api.GET("/api/todos", controller.APIEvents)
	controller.api.GET("/tags", controller.Tags)
}

// FindAll godoc
// @Summary List the caller's todos
// @Description Retrieve the caller's todos in display order plus the tag catalog, optionally filtered by a search string
// @Tags todo
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive substring filter on the todo text"
// @Success 200 {object} model.TodoListDTO "Ordered todos and tag catalog"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	ownerID := middleware.UserID(c)
	search := c.QueryParam("q")

	list, err := controller.useCase.FindAll(ownerID, search)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo with optional due date (YYYY-MM-DD) and tag ids; unknown tag ids are ignored
// @Tags todo
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} map[string]string "Invalid todo data"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(middleware.UserID(c), dto)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// Complete godoc
// @Summary Complete a todo
// @Description Mark a todo done; unknown or foreign ids answer 204 without revealing anything
// @Tags todo
// @Produce json
// @Param id path int true "Todo id"
// @Success 204 "Todo completed (or nothing to do)"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos/{id}/complete [patch]
func (controller *TodoController) Complete(c echo.Context) error {
	id := numberutils.ToIntWithDefault(c.Param("id"), 0)

	if err := controller.useCase.Complete(middleware.UserID(c), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a todo
// @Description Remove a todo and its tag links; unknown or foreign ids answer 204
// @Tags todo
// @Produce json
// @Param id path int true "Todo id"
// @Success 204 "Todo deleted (or nothing to do)"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id := numberutils.ToIntWithDefault(c.Param("id"), 0)

	if err := controller.useCase.Delete(middleware.UserID(c), uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// CalendarEvents godoc
// @Summary Calendar event feed
// @Description Project the caller's dated todos into calendar events with truncated titles and classification colors
// @Tags calendar
// @Produce json
// @Success 200 {array} model.CalendarEventDTO "Calendar events"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /calendar/events [get]
func (controller *TodoController) CalendarEvents(c echo.Context) error {
	events, err := controller.useCase.CalendarEvents(middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, events)
}

// APIEvents godoc
// @Summary All-day JSON event feed
// @Description Project the caller's dated todos into all-day events with full titles
// @Tags calendar
// @Produce json
// @Success 200 {array} model.APIEventDTO "All-day events"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /api/todos [get]
func (controller *TodoController) APIEvents(c echo.Context) error {
	events, err := controller.useCase.APIEvents(middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, events)
}

// Tags godoc
// @Summary List the tag catalog
// @Description Retrieve every tag with its display color
// @Tags tag
// @Produce json
// @Success 200 {array} entity.Tag "Tag catalog"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /tags [get]
func (controller *TodoController) Tags(c echo.Context) error {
	tags, err := controller.useCase.Tags()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tags)
}
