package services

import (
	"context"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"
)

type TaskService interface {
	Create(ctx context.Context, req models.CreateTaskRequest) (*models.SocialMediaTask, error)
	Complete(ctx context.Context, identity models.Identity, taskID uint) (*models.TaskView, error)
	EditorDashboard(ctx context.Context, identity models.Identity) (*models.EditorDashboard, error)
}

type taskService struct {
	taskRepo     repositories.TaskRepository
	scheduleRepo repositories.ScheduleRepository
	userRepo     repositories.UserRepository
	now          Clock
	log          *logger.Logger
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	clock Clock,
	log *logger.Logger,
) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		now:          orSystemClock(clock),
		log:          log.With("service", "TaskService"),
	}
}

// Create is the administrative entry point. It is not reachable from any role surface.
func (s *taskService) Create(ctx context.Context, req models.CreateTaskRequest) (*models.SocialMediaTask, error) {
	if !req.SocialMedia.Valid() {
		return nil, models.ErrorValidation{Field: "social_media", Message: "must be one of instagram, tiktok, youtube"}
	}

	if _, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID); err != nil {
		return nil, notFound(err, "schedule", req.ScheduleID)
	}

	if req.EditorID != nil {
		editor, err := s.userRepo.GetByID(ctx, *req.EditorID)
		if err != nil {
			return nil, notFound(err, "user", *req.EditorID)
		}
		if editor.Role != models.RoleEditor {
			return nil, models.ErrorValidation{Field: "editor_id", Message: "assigned user must be an editor"}
		}
	}

	task := &models.SocialMediaTask{
		ScheduleID:  req.ScheduleID,
		EditorID:    req.EditorID,
		SocialMedia: req.SocialMedia,
		Caption:     req.Caption,
		FilmTitle:   req.FilmTitle,
		DueDate:     req.DueDate.UTC(),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info("Task created", "task_id", task.ID, "schedule_id", task.ScheduleID)
	return task, nil
}

func (s *taskService) Complete(ctx context.Context, identity models.Identity, taskID uint) (*models.TaskView, error) {
	editor, err := identity.AsEditor()
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, notFound(err, "task", taskID)
	}
	if !task.IsAssignedTo(editor.ID()) {
		return nil, models.ErrorForbidden{Message: "only the assigned editor can complete this task"}
	}

	now := s.now()
	task.Complete(now)
	if err := s.taskRepo.MarkCompleted(ctx, task.ID, now); err != nil {
		return nil, err
	}
	s.log.Info("Task completed", "task_id", task.ID, "editor_id", editor.ID())

	return &models.TaskView{SocialMediaTask: *task, IsOverdue: task.IsOverdue(now)}, nil
}

func (s *taskService) EditorDashboard(ctx context.Context, identity models.Identity) (*models.EditorDashboard, error) {
	editor, err := identity.AsEditor()
	if err != nil {
		return nil, err
	}

	open, err := s.taskRepo.ListByEditor(ctx, editor.ID(), false)
	if err != nil {
		return nil, err
	}
	completed, err := s.taskRepo.ListByEditor(ctx, editor.ID(), true)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &models.EditorDashboard{
		Tasks:          models.NewTaskViews(open, now),
		CompletedTasks: models.NewTaskViews(completed, now),
	}, nil
}
