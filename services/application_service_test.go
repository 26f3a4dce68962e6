package services

import (
	"context"
	"time"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"

	"gorm.io/gorm"
)

// Scenario: apply, approve, then the reminder job picks the confirmed actor up.
func (s *ServiceTestSuite) TestApplyApproveRemind() {
	schedule := s.createSchedule("Sunrise", 1)

	result, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	s.True(result.Created)
	s.Equal(models.ApplicationPending, result.Application.Status)
	s.Equal(s.now, result.Application.SubmittedAt)
	s.Nil(result.Application.RespondedAt)

	producerInbox := s.notificationsFor(s.producer.ID)
	s.Require().Len(producerInbox, 1)
	s.Equal(`Actor Xavier applied to join schedule "Sunrise".`, producerInbox[0].Message)

	approved, err := s.applications.Approve(s.ctx, s.producer.Identity(), result.Application.ID)
	s.Require().NoError(err)
	s.Equal(models.ApplicationConfirmed, approved.Status)
	s.Require().NotNil(approved.RespondedAt)

	actorInbox := s.notificationsFor(s.actor.ID)
	s.Require().Len(actorInbox, 1)
	s.Equal(`Your application for "Sunrise" was accepted.`, actorInbox[0].Message)

	count, err := s.reminders.SendReminders(s.ctx, s.now)
	s.Require().NoError(err)
	s.Equal(1, count)

	actorInbox = s.notificationsFor(s.actor.ID)
	s.Require().Len(actorInbox, 2)
	s.Contains(actorInbox[0].Message, "Sunrise")
	s.Equal(schedule.ID, actorInbox[0].ScheduleID)
}

func (s *ServiceTestSuite) TestApplyTwiceIsNoop() {
	schedule := s.createSchedule("Twice", 2)

	first, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	second, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)

	s.True(first.Created)
	s.False(second.Created)
	s.Equal(first.Application.ID, second.Application.ID)
	s.EqualValues(1, s.countRows(&models.Application{}, "schedule_id = ? AND actor_id = ?", schedule.ID, s.actor.ID))
	s.Len(s.notificationsFor(s.producer.ID), 1)
}

func (s *ServiceTestSuite) TestApplyToExistingOnClosedScheduleIsStillNoop() {
	schedule := s.createSchedule("Cutoff", 2)
	_, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	_, err = s.schedules.Close(s.ctx, s.producer.Identity(), schedule.ID)
	s.Require().NoError(err)

	result, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)

	s.Require().NoError(err)
	s.False(result.Created)
}

func (s *ServiceTestSuite) TestApplyToClosedOrCompletedSchedule() {
	closed := s.createSchedule("Closed", 2)
	completed := s.createSchedule("Completed", 2)
	_, err := s.schedules.Close(s.ctx, s.producer.Identity(), closed.ID)
	s.Require().NoError(err)
	_, err = s.schedules.Complete(s.ctx, s.producer.Identity(), completed.ID)
	s.Require().NoError(err)

	for _, id := range []uint{closed.ID, completed.ID} {
		_, err := s.applications.Apply(s.ctx, s.actor2.Identity(), id)
		var notJoinable models.ErrorScheduleNotJoinable
		s.ErrorAs(err, &notJoinable)
	}
	s.Zero(s.countRows(&models.Application{}, "actor_id = ?", s.actor2.ID))
}

func (s *ServiceTestSuite) TestApplyByNonActor() {
	schedule := s.createSchedule("Roles", 2)

	for _, user := range []models.User{s.producer, s.editor} {
		_, err := s.applications.Apply(s.ctx, user.Identity(), schedule.ID)
		var violation models.ErrorRoleViolation
		s.ErrorAs(err, &violation)
	}
	s.Zero(s.countRows(&models.Application{}, "schedule_id = ?", schedule.ID))
}

func (s *ServiceTestSuite) TestApplyToMissingSchedule() {
	_, err := s.applications.Apply(s.ctx, s.actor.Identity(), 404)

	s.True(models.IsNotFound(err))
}

type racingApplicationRepo struct {
	repositories.ApplicationRepository
}

func (racingApplicationRepo) FindByScheduleAndActor(context.Context, uint, uint) (*models.Application, error) {
	return nil, gorm.ErrRecordNotFound
}

// A duplicate row that slips past the explicit check surfaces as Conflict, not as the no-op.
func (s *ServiceTestSuite) TestApplyDuplicateKeyIsConflict() {
	schedule := s.createSchedule("Race", 2)
	_, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)

	racing := NewApplicationService(racingApplicationRepo{s.applicationRepo}, s.scheduleRepo, s.userRepo, s.notifications, func() time.Time { return s.now }, logger.Nop())
	_, err = racing.Apply(s.ctx, s.actor.Identity(), schedule.ID)

	var conflict models.ErrorConflict
	s.ErrorAs(err, &conflict)
	s.EqualValues(1, s.countRows(&models.Application{}, "schedule_id = ?", schedule.ID))
}

func (s *ServiceTestSuite) TestWithdraw() {
	schedule := s.createSchedule("Maybe", 2)
	_, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	before := len(s.notificationsFor(s.producer.ID))

	s.Require().NoError(s.applications.Withdraw(s.ctx, s.actor.Identity(), schedule.ID))

	s.Zero(s.countRows(&models.Application{}, "schedule_id = ?", schedule.ID))
	s.Len(s.notificationsFor(s.producer.ID), before, "withdrawal emits nothing")

	err = s.applications.Withdraw(s.ctx, s.actor.Identity(), schedule.ID)
	s.True(models.IsNotFound(err))

	again, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	s.True(again.Created, "a withdrawn actor may apply again")
}

func (s *ServiceTestSuite) TestWithdrawDecidedApplication() {
	schedule := s.createSchedule("Decided", 2)
	a, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)
	b, err := s.applications.Apply(s.ctx, s.actor2.Identity(), schedule.ID)
	s.Require().NoError(err)
	_, err = s.applications.Approve(s.ctx, s.producer.Identity(), a.Application.ID)
	s.Require().NoError(err)
	_, err = s.applications.Reject(s.ctx, s.producer.Identity(), b.Application.ID)
	s.Require().NoError(err)

	for _, pair := range []struct {
		actor  models.User
		status models.ApplicationStatus
	}{{s.actor, models.ApplicationConfirmed}, {s.actor2, models.ApplicationRejected}} {
		err := s.applications.Withdraw(s.ctx, pair.actor.Identity(), schedule.ID)
		var invalid models.ErrorInvalidTransition
		s.ErrorAs(err, &invalid)

		stored, err := s.applicationRepo.FindByScheduleAndActor(s.ctx, schedule.ID, pair.actor.ID)
		s.Require().NoError(err)
		s.Equal(pair.status, stored.Status)
	}
}

func (s *ServiceTestSuite) TestDecideByOtherProducerIsForbidden() {
	schedule := s.createSchedule("Owned", 2)
	result, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)

	_, err = s.applications.Approve(s.ctx, s.other.Identity(), result.Application.ID)
	s.True(models.IsForbidden(err))
	_, err = s.applications.Reject(s.ctx, s.actor.Identity(), result.Application.ID)
	s.True(models.IsForbidden(err))

	stored, err := s.applicationRepo.GetByID(s.ctx, result.Application.ID)
	s.Require().NoError(err)
	s.Equal(models.ApplicationPending, stored.Status)
	s.Nil(stored.RespondedAt)
	s.Empty(s.notificationsFor(s.actor.ID))
}

func (s *ServiceTestSuite) TestRedecisionOverwrites() {
	schedule := s.createSchedule("Flip", 2)
	result, err := s.applications.Apply(s.ctx, s.actor.Identity(), schedule.ID)
	s.Require().NoError(err)

	_, err = s.applications.Reject(s.ctx, s.producer.Identity(), result.Application.ID)
	s.Require().NoError(err)
	s.now = s.now.Add(time.Hour)
	approved, err := s.applications.Approve(s.ctx, s.producer.Identity(), result.Application.ID)
	s.Require().NoError(err)

	s.Equal(models.ApplicationConfirmed, approved.Status)
	s.Equal(s.now, *approved.RespondedAt)
	inbox := s.notificationsFor(s.actor.ID)
	s.Require().Len(inbox, 2)
	s.Equal(`Your application for "Flip" was accepted.`, inbox[0].Message)
}

func (s *ServiceTestSuite) TestDecideMissingApplication() {
	_, err := s.applications.Approve(s.ctx, s.producer.Identity(), 77)

	s.True(models.IsNotFound(err))
}

func (s *ServiceTestSuite) TestListAvailableExcludesAppliedSchedules() {
	pending := s.createSchedule("Pending", 3)
	rejected := s.createSchedule("Rejected", 3)
	open := s.createSchedule("Open", 2)
	closed := s.createSchedule("Closed", 1)
	_, err := s.schedules.Close(s.ctx, s.producer.Identity(), closed.ID)
	s.Require().NoError(err)

	_, err = s.applications.Apply(s.ctx, s.actor.Identity(), pending.ID)
	s.Require().NoError(err)
	r, err := s.applications.Apply(s.ctx, s.actor.Identity(), rejected.ID)
	s.Require().NoError(err)
	_, err = s.applications.Reject(s.ctx, s.producer.Identity(), r.Application.ID)
	s.Require().NoError(err)

	available, err := s.applications.ListAvailable(s.ctx, s.actor.Identity())
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(open.ID, available[0].ID)

	forOther, err := s.applications.ListAvailable(s.ctx, s.actor2.Identity())
	s.Require().NoError(err)
	s.Len(forOther, 3)
	s.Equal(open.ID, forOther[0].ID, "ordered by date")

	_, err = s.applications.ListAvailable(s.ctx, s.producer.Identity())
	s.True(models.IsForbidden(err))
}

func (s *ServiceTestSuite) TestActorDashboard() {
	tomorrow := s.createSchedule("Tomorrow", 1)
	s.now = s.now.Add(time.Minute)
	later := s.createSchedule("Later", 6)

	a, err := s.applications.Apply(s.ctx, s.actor.Identity(), tomorrow.ID)
	s.Require().NoError(err)
	s.now = s.now.Add(time.Minute)
	_, err = s.applications.Apply(s.ctx, s.actor.Identity(), later.ID)
	s.Require().NoError(err)
	_, err = s.applications.Approve(s.ctx, s.producer.Identity(), a.Application.ID)
	s.Require().NoError(err)

	dashboard, err := s.applications.ActorDashboard(s.ctx, s.actor.Identity(), s.now)
	s.Require().NoError(err)

	s.Require().Len(dashboard.Applications, 2)
	s.Equal(later.ID, dashboard.Applications[0].ScheduleID, "newest first")
	s.Require().Len(dashboard.Reminders, 1)
	s.Equal(tomorrow.ID, dashboard.Reminders[0].ID)
}
