package repositories

import (
	"context"

	"shoot-scheduler/models"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id uint) (*models.Schedule, error)
	GetWithApplications(ctx context.Context, id uint) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	UpdateStatus(ctx context.Context, id uint, status models.ScheduleStatus) error
	Delete(ctx context.Context, id uint) error
	ListByProducer(ctx context.Context, producerID uint) ([]models.Schedule, error)
	ListAvailableExcludingActor(ctx context.Context, actorID uint) ([]models.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleOrder = "shoot_date asc, shoot_time asc, id asc"

func (r *scheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Omit("Applications", "Tasks", "Producer").Create(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).Preload("Producer").First(&schedule, id).Error
	return &schedule, err
}

func (r *scheduleRepository) GetWithApplications(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Producer").
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("submitted_at asc")
		}).
		Preload("Applications.Actor").
		Preload("Tasks").
		First(&schedule, id).Error
	return &schedule, err
}

// Update writes the editable fields only. Status has its own write path.
func (r *scheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Model(&models.Schedule{ID: schedule.ID}).
		Select("Title", "Date", "Time", "Location", "Description", "Script").
		Updates(schedule).Error
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id uint, status models.ScheduleStatus) error {
	return r.db.WithContext(ctx).Model(&models.Schedule{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the schedule together with everything that hangs off it.
func (r *scheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", id).Delete(&models.SocialMediaTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Schedule{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *scheduleRepository) ListByProducer(ctx context.Context, producerID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("submitted_at asc")
		}).
		Preload("Applications.Actor").
		Where("producer_id = ?", producerID).
		Order(scheduleOrder).
		Find(&schedules).Error
	return schedules, err
}

// ListAvailableExcludingActor returns the open schedules the actor has not applied to.
func (r *scheduleRepository) ListAvailableExcludingActor(ctx context.Context, actorID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	applied := r.db.Model(&models.Application{}).Select("schedule_id").Where("actor_id = ?", actorID)
	err := r.db.WithContext(ctx).
		Preload("Producer").
		Where("status = ?", models.ScheduleAvailable).
		Where("id NOT IN (?)", applied).
		Order(scheduleOrder).
		Find(&schedules).Error
	return schedules, err
}
