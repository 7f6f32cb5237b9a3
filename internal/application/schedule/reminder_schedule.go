package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/reminder"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

// ReminderSchedulerConfig holds configuration for the reminder scheduler
type ReminderSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// ReminderScheduler runs the daily reminder batch on a cron trigger. A Redis
// distributed lock with auto-refresh keeps at most one replica running the
// batch; the process stays alive and re-triggers daily.
type ReminderScheduler struct {
	cron        *cron.Cron
	useCase     reminder.UseCase
	redisClient *redis.Client
	config      *ReminderSchedulerConfig
}

// NewReminderScheduler creates a new reminder scheduler with distributed locking support
func NewReminderScheduler(useCase reminder.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *ReminderScheduler {
	return &ReminderScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &ReminderSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitReminderScheduleTasks acquires the batch lock and starts the cron loop
func (s *ReminderScheduler) InitReminderScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewLock(
			s.redisClient,
			"reminder_daily_batch",
			redis.NewLockOptions().
				WithTTL(s.getLockTTL()).
				WithRefreshInterval(s.getRefreshInterval()).
				WithLockNamespace("reminder_schedules"),
		)

		if err := lock.Lock(ctx); err != nil {
			log.Errorf("Failed to acquire distributed lock, reminder scheduler will not be initialized: %v", err)
			return
		}

		// Keep the lock alive for as long as this replica owns the schedule
		refreshErrChan := lock.AutoRefresh(ctx)

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
			log.Errorf("Failed to initialize reminder scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Reminder scheduler started successfully with cron expression: %s", s.config.CronExpression)

		err := <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Reminder scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Reminder scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask runs one reminder pass. Re-running within the same day
// re-sends the same reminders; there is no cross-run dedup.
func (s *ReminderScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("reminder.cron.start"), zap.String("request_id", requestID))

	if err := s.useCase.SendDueReminders(time.Now()); err != nil {
		log.Error(msg.GetMessage("reminder.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("reminder.cron.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *ReminderScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *ReminderScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *ReminderScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
