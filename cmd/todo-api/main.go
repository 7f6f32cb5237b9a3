package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/database/gorm"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0
// @description Personal todo tracking with due dates, tags and calendar feeds
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	jwtSecret := []byte(resource.GetString("app.auth.jwt-secret"))
	tokenTTL := time.Duration(resource.GetInt("app.auth.token-ttl-hours")) * time.Hour

	// Init Gateways
	healthGateway := db.NewGormHealthDBGateway(gorm.Db)
	userGateway := db.NewGormUserGateway(gorm.Db)
	todoGateway := db.NewGormTodoGateway(gorm.Db)
	tagGateway := db.NewGormTagGateway(gorm.Db)

	// Init UseCases
	healthUseCase := health.NewHealthUseCase(healthGateway)
	authUseCase := auth.NewAuthUseCase(userGateway, jwtSecret, tokenTTL)
	todoUseCase := todo.NewTodoUseCase(todoGateway, tagGateway)

	if err := todoUseCase.SeedDefaultTags(); err != nil {
		log.Errorf("Failed to seed default tags: %v", err)
	}

	// Init Controllers
	healthController := controller.NewHealthController(api, healthUseCase)
	authController := controller.NewAuthController(api, authUseCase)

	protected := api.Group("", middleware.JWTAuth(jwtSecret))
	todoController := controller.NewTodoController(protected, todoUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	authController.InitAuthRoutes()
	todoController.InitTodoRoutes()

	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
