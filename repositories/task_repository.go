package repositories

import (
	"context"
	"time"

	"shoot-scheduler/models"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.SocialMediaTask) error
	GetByID(ctx context.Context, id uint) (*models.SocialMediaTask, error)
	MarkCompleted(ctx context.Context, id uint, at time.Time) error
	ListByEditor(ctx context.Context, editorID uint, completed bool) ([]models.SocialMediaTask, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.SocialMediaTask) error {
	return r.db.WithContext(ctx).Omit("Schedule", "Editor").Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*models.SocialMediaTask, error) {
	var task models.SocialMediaTask
	err := r.db.WithContext(ctx).Preload("Schedule").First(&task, id).Error
	return &task, err
}

func (r *taskRepository) MarkCompleted(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.SocialMediaTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_completed": true, "completed_at": at}).Error
}

// ListByEditor returns open tasks soonest-due first, or completed tasks most recent first.
func (r *taskRepository) ListByEditor(ctx context.Context, editorID uint, completed bool) ([]models.SocialMediaTask, error) {
	var tasks []models.SocialMediaTask
	query := r.db.WithContext(ctx).
		Preload("Schedule").
		Where("editor_id = ? AND is_completed = ?", editorID, completed)
	if completed {
		query = query.Order("completed_at desc, id desc")
	} else {
		query = query.Order("due_date asc, id asc")
	}
	err := query.Find(&tasks).Error
	return tasks, err
}
