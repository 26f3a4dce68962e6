package services

import (
	"context"
	"fmt"
	"time"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

// ReminderGuard decides whether a reminder for (user, schedule, day) may be sent.
type ReminderGuard interface {
	Claim(ctx context.Context, userID, scheduleID uint, day datatypes.Date) (bool, error)
}

// NoGuard lets every reminder through, so repeated runs send repeated reminders.
type NoGuard struct{}

func (NoGuard) Claim(context.Context, uint, uint, datatypes.Date) (bool, error) {
	return true, nil
}

const reminderClaimTTL = 48 * time.Hour

// RedisGuard claims each (user, schedule, day) once with SETNX.
type RedisGuard struct {
	rdb *redis.Client
}

func NewRedisGuard(rdb *redis.Client) *RedisGuard {
	return &RedisGuard{rdb: rdb}
}

func (g *RedisGuard) Claim(ctx context.Context, userID, scheduleID uint, day datatypes.Date) (bool, error) {
	return g.rdb.SetNX(ctx, reminderKey(userID, scheduleID, day), 1, reminderClaimTTL).Result()
}

func reminderKey(userID, scheduleID uint, day datatypes.Date) string {
	return fmt.Sprintf("reminder:%d:%d:%s", userID, scheduleID, models.FormatDate(day))
}

type ReminderService interface {
	SendReminders(ctx context.Context, today time.Time) (int, error)
}

type reminderService struct {
	applicationRepo repositories.ApplicationRepository
	notifier        Notifier
	guard           ReminderGuard
	log             *logger.Logger
}

func NewReminderService(applicationRepo repositories.ApplicationRepository, notifier Notifier, guard ReminderGuard, log *logger.Logger) ReminderService {
	if guard == nil {
		guard = NoGuard{}
	}
	return &reminderService{
		applicationRepo: applicationRepo,
		notifier:        notifier,
		guard:           guard,
		log:             log.With("service", "ReminderService"),
	}
}

// SendReminders notifies every actor with a confirmed application for a
// schedule dated the day after today that is not completed yet. It returns
// the number of notifications created.
func (s *reminderService) SendReminders(ctx context.Context, today time.Time) (int, error) {
	tomorrow := models.Tomorrow(today)

	applications, err := s.applicationRepo.ListConfirmedForDate(ctx, tomorrow)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, app := range applications {
		if !models.NeedsReminder(app, today) {
			continue
		}
		ok, err := s.guard.Claim(ctx, app.ActorID, app.ScheduleID, tomorrow)
		if err != nil {
			return created, fmt.Errorf("claim reminder for application %d: %w", app.ID, err)
		}
		if !ok {
			s.log.Debug("Reminder already sent", "actor_id", app.ActorID, "schedule_id", app.ScheduleID)
			continue
		}
		if err := s.notifier.Notify(ctx, app.ActorID, app.ScheduleID, models.NewReminderMessage(*app.Schedule)); err != nil {
			return created, fmt.Errorf("notify actor %d: %w", app.ActorID, err)
		}
		created++
	}

	s.log.Info("Reminders created", "count", created, "date", models.FormatDate(tomorrow))
	return created, nil
}
