package services

import (
	"context"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"
)

// Notifier emits user-facing messages. Lifecycle services call it after the
// state change has been stored, so the delivery strategy can change without
// touching transition code.
type Notifier interface {
	Notify(ctx context.Context, userID, scheduleID uint, message string) error
}

type NotificationService interface {
	Notifier
	List(ctx context.Context, identity models.Identity, params models.NotificationListParams) ([]models.Notification, int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	log              *logger.Logger
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, log *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		log:              log.With("service", "NotificationService"),
	}
}

func (s *notificationService) Notify(ctx context.Context, userID, scheduleID uint, message string) error {
	notification := &models.Notification{
		UserID:     userID,
		ScheduleID: scheduleID,
		Message:    message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}
	s.log.Debug("Notification stored", "user_id", userID, "schedule_id", scheduleID)
	return nil
}

func (s *notificationService) List(ctx context.Context, identity models.Identity, params models.NotificationListParams) ([]models.Notification, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	return s.notificationRepo.ListByUser(ctx, identity.ID, params)
}
