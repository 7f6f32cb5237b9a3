package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/reminder"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/internal/infra/mail"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("reminder.start"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init infra
	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))
	defer redisClient.Close()

	sender := mail.NewResendSender(
		resource.GetString("app.mail.base-url"),
		resource.GetString("app.mail.api-key"),
		resource.GetString("app.mail.from"),
		resource.GetString("app.mail.app-url"),
	)

	// Init Gateway and UseCase
	reminderGateway := db.NewSQLReminderGateway(sqlc.Db)
	reminderUseCase := reminder.NewReminderUseCase(reminderGateway, sender)

	// Init Schedule
	reminderScheduler := schedule.NewReminderScheduler(
		reminderUseCase,
		redisClient,
		resource.GetString("app.reminder.cron"),
		resource.GetInt("app.reminder.lock-ttl-seconds"),
		resource.GetInt("app.reminder.lock-refresh-seconds"),
	)
	reminderScheduler.InitReminderScheduleTasks(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("reminder.stop"))
	reminderScheduler.Stop()
}
