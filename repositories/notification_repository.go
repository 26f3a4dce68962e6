package repositories

import (
	"context"

	"shoot-scheduler/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, params models.NotificationListParams) ([]models.Notification, int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Omit("User", "Schedule").Create(notification).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint, params models.NotificationListParams) ([]models.Notification, int64, error) {
	var notifications []models.Notification

	total, err := r.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err = r.db.WithContext(ctx).
		Preload("Schedule").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
