package repositories

import (
	"context"

	"shoot-scheduler/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	FindByScheduleAndActor(ctx context.Context, scheduleID, actorID uint) (*models.Application, error)
	UpdateDecision(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, id uint) error
	ListByActor(ctx context.Context, actorID uint) ([]models.Application, error)
	ListConfirmedForDate(ctx context.Context, day datatypes.Date) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Omit("Schedule", "Actor").Create(application).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Actor").
		First(&application, id).Error
	return &application, err
}

func (r *applicationRepository) FindByScheduleAndActor(ctx context.Context, scheduleID, actorID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND actor_id = ?", scheduleID, actorID).
		First(&application).Error
	return &application, err
}

func (r *applicationRepository) UpdateDecision(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Model(&models.Application{ID: application.ID}).
		Select("Status", "RespondedAt").
		Updates(application).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Application{}, id).Error
}

func (r *applicationRepository) ListByActor(ctx context.Context, actorID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Schedule.Producer").
		Where("actor_id = ?", actorID).
		Order("submitted_at desc, id desc").
		Find(&applications).Error
	return applications, err
}

// ListConfirmedForDate returns confirmed applications whose schedule is dated day and not completed.
func (r *applicationRepository) ListConfirmedForDate(ctx context.Context, day datatypes.Date) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Actor").
		Joins("JOIN schedules ON schedules.id = applications.schedule_id").
		Where("applications.status = ?", models.ApplicationConfirmed).
		Where("schedules.shoot_date = ?", day).
		Where("schedules.status <> ?", models.ScheduleCompleted).
		Order("applications.id asc").
		Find(&applications).Error
	return applications, err
}
