package services

import (
	"time"

	"shoot-scheduler/models"
)

func (s *ServiceTestSuite) createTask(scheduleID uint, editorID *uint, due time.Time) *models.SocialMediaTask {
	task, err := s.tasks.Create(s.ctx, models.CreateTaskRequest{
		ScheduleID:  scheduleID,
		EditorID:    editorID,
		SocialMedia: models.PlatformYouTube,
		Caption:     "Teaser",
		FilmTitle:   "Harbour",
		DueDate:     due,
	})
	s.Require().NoError(err)
	return task
}

func (s *ServiceTestSuite) TestCompleteTask() {
	schedule := s.createSchedule("Harbour", 1)
	task := s.createTask(schedule.ID, &s.editor.ID, s.now.Add(-time.Hour))

	view, err := s.tasks.Complete(s.ctx, s.editor.Identity(), task.ID)
	s.Require().NoError(err)

	s.True(view.IsCompleted)
	s.Require().NotNil(view.CompletedAt)
	s.Equal(s.now, *view.CompletedAt)
	s.False(view.IsOverdue)
	s.False(view.SocialMediaTask.IsOverdue(s.now.AddDate(1, 0, 0)))

	stored, err := s.taskRepo.GetByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.True(stored.IsCompleted)
	s.Require().NotNil(stored.CompletedAt)
	s.WithinDuration(s.now, *stored.CompletedAt, time.Second)
}

func (s *ServiceTestSuite) TestCompleteTaskAuthorization() {
	schedule := s.createSchedule("Harbour", 1)
	other := s.createUser("erin", models.RoleEditor)
	task := s.createTask(schedule.ID, &s.editor.ID, s.now.Add(time.Hour))
	unassigned := s.createTask(schedule.ID, nil, s.now.Add(time.Hour))

	_, err := s.tasks.Complete(s.ctx, other.Identity(), task.ID)
	var forbidden models.ErrorForbidden
	s.ErrorAs(err, &forbidden)

	_, err = s.tasks.Complete(s.ctx, s.editor.Identity(), unassigned.ID)
	s.ErrorAs(err, &forbidden)

	_, err = s.tasks.Complete(s.ctx, s.producer.Identity(), task.ID)
	var violation models.ErrorRoleViolation
	s.ErrorAs(err, &violation)

	_, err = s.tasks.Complete(s.ctx, s.editor.Identity(), 999)
	s.True(models.IsNotFound(err))

	stored, err := s.taskRepo.GetByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.False(stored.IsCompleted)
}

func (s *ServiceTestSuite) TestCreateTaskValidation() {
	schedule := s.createSchedule("Harbour", 1)

	_, err := s.tasks.Create(s.ctx, models.CreateTaskRequest{
		ScheduleID: schedule.ID, SocialMedia: "myspace", Caption: "c", FilmTitle: "f", DueDate: s.now,
	})
	var validation models.ErrorValidation
	s.ErrorAs(err, &validation)

	_, err = s.tasks.Create(s.ctx, models.CreateTaskRequest{
		ScheduleID: schedule.ID, EditorID: &s.actor.ID, SocialMedia: models.PlatformTikTok, Caption: "c", FilmTitle: "f", DueDate: s.now,
	})
	s.ErrorAs(err, &validation)

	_, err = s.tasks.Create(s.ctx, models.CreateTaskRequest{
		ScheduleID: 999, SocialMedia: models.PlatformTikTok, Caption: "c", FilmTitle: "f", DueDate: s.now,
	})
	s.True(models.IsNotFound(err))
}

func (s *ServiceTestSuite) TestEditorDashboard() {
	schedule := s.createSchedule("Harbour", 1)
	overdue := s.createTask(schedule.ID, &s.editor.ID, s.now.Add(-2*time.Hour))
	upcoming := s.createTask(schedule.ID, &s.editor.ID, s.now.Add(48*time.Hour))
	done := s.createTask(schedule.ID, &s.editor.ID, s.now.Add(time.Hour))
	s.createTask(schedule.ID, nil, s.now.Add(time.Hour))

	_, err := s.tasks.Complete(s.ctx, s.editor.Identity(), done.ID)
	s.Require().NoError(err)

	dashboard, err := s.tasks.EditorDashboard(s.ctx, s.editor.Identity())
	s.Require().NoError(err)

	s.Require().Len(dashboard.Tasks, 2)
	s.Equal(overdue.ID, dashboard.Tasks[0].ID, "soonest due first")
	s.True(dashboard.Tasks[0].IsOverdue)
	s.Equal(upcoming.ID, dashboard.Tasks[1].ID)
	s.False(dashboard.Tasks[1].IsOverdue)

	s.Require().Len(dashboard.CompletedTasks, 1)
	s.Equal(done.ID, dashboard.CompletedTasks[0].ID)
	s.False(dashboard.CompletedTasks[0].IsOverdue)

	s.now = s.now.Add(72 * time.Hour)
	dashboard, err = s.tasks.EditorDashboard(s.ctx, s.editor.Identity())
	s.Require().NoError(err)
	s.True(dashboard.Tasks[1].IsOverdue, "overdue is evaluated on every read")
}
