package services

import (
	"context"
	"time"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"

	"gorm.io/datatypes"
)

type memoryGuard struct {
	claimed map[string]bool
}

func (g *memoryGuard) Claim(_ context.Context, userID, scheduleID uint, day datatypes.Date) (bool, error) {
	key := reminderKey(userID, scheduleID, day)
	if g.claimed[key] {
		return false, nil
	}
	g.claimed[key] = true
	return true, nil
}

func (s *ServiceTestSuite) confirm(schedule *models.Schedule, actor models.User) {
	result, err := s.applications.Apply(s.ctx, actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	_, err = s.applications.Approve(s.ctx, s.producer.Identity(), result.Application.ID)
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestSendRemindersFilters() {
	tomorrow := s.createSchedule("Tomorrow", 1)
	closedTomorrow := s.createSchedule("Closed tomorrow", 1)
	doneTomorrow := s.createSchedule("Done tomorrow", 1)
	nextWeek := s.createSchedule("Next week", 7)

	s.confirm(tomorrow, s.actor)
	s.confirm(closedTomorrow, s.actor)
	s.confirm(doneTomorrow, s.actor)
	s.confirm(nextWeek, s.actor)
	_, err := s.applications.Apply(s.ctx, s.actor2.Identity(), tomorrow.ID)
	s.Require().NoError(err)

	_, err = s.schedules.Close(s.ctx, s.producer.Identity(), closedTomorrow.ID)
	s.Require().NoError(err)
	_, err = s.schedules.Complete(s.ctx, s.producer.Identity(), doneTomorrow.ID)
	s.Require().NoError(err)

	count, err := s.reminders.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)

	s.Equal(2, count)
	s.Empty(s.notificationsFor(s.actor2.ID), "pending applicants get no reminder")
	s.EqualValues(1, s.countRows(&models.Notification{}, "user_id = ? AND schedule_id = ? AND message LIKE ?", s.actor.ID, tomorrow.ID, "Reminder:%"))
	s.EqualValues(1, s.countRows(&models.Notification{}, "user_id = ? AND schedule_id = ? AND message LIKE ?", s.actor.ID, closedTomorrow.ID, "Reminder:%"))
}

func (s *ServiceTestSuite) TestSendRemindersTwiceDuplicatesWithoutGuard() {
	schedule := s.createSchedule("Again", 1)
	s.confirm(schedule, s.actor)

	first, err := s.reminders.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)
	second, err := s.reminders.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)

	s.Equal(1, first)
	s.Equal(1, second)
	s.EqualValues(2, s.countRows(&models.Notification{}, "user_id = ? AND message LIKE ?", s.actor.ID, "Reminder:%"))
}

func (s *ServiceTestSuite) TestSendRemindersWithGuard() {
	schedule := s.createSchedule("Once", 1)
	s.confirm(schedule, s.actor)

	guarded := NewReminderService(s.applicationRepo, s.notifications, &memoryGuard{claimed: map[string]bool{}}, logger.Nop())

	first, err := guarded.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)
	second, err := guarded.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)

	s.Equal(1, first)
	s.Zero(second)
}

func (s *ServiceTestSuite) TestSendRemindersUsesCallerToday() {
	schedule := s.createSchedule("Friday", 3)
	s.confirm(schedule, s.actor)

	count, err := s.reminders.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)
	s.Zero(count)

	count, err = s.reminders.SendReminders(s.ctx, s.now.Add(48*time.Hour))
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServiceTestSuite) TestReminderKey() {
	day := models.DateOf(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC))

	s.Equal("reminder:3:9:2026-07-04", reminderKey(3, 9, day))
}
