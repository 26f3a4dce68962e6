package services

import (
	"context"
	"errors"
	"time"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(ctx context.Context, identity models.Identity, scheduleID uint) (*models.ApplyResult, error)
	Withdraw(ctx context.Context, identity models.Identity, scheduleID uint) error
	Approve(ctx context.Context, identity models.Identity, applicationID uint) (*models.Application, error)
	Reject(ctx context.Context, identity models.Identity, applicationID uint) (*models.Application, error)
	ListAvailable(ctx context.Context, identity models.Identity) ([]models.Schedule, error)
	ActorDashboard(ctx context.Context, identity models.Identity, today time.Time) (*models.ActorDashboard, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	scheduleRepo    repositories.ScheduleRepository
	userRepo        repositories.UserRepository
	notifier        Notifier
	now             Clock
	log             *logger.Logger
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
	clock Clock,
	log *logger.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		scheduleRepo:    scheduleRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		now:             orSystemClock(clock),
		log:             log.With("service", "ApplicationService"),
	}
}

// Apply joins the actor to the schedule. An existing application, whatever its
// status, is returned with Created=false and nothing is written.
func (s *applicationService) Apply(ctx context.Context, identity models.Identity, scheduleID uint) (*models.ApplyResult, error) {
	actor, err := identity.AsActor()
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, notFound(err, "schedule", scheduleID)
	}

	existing, err := s.applicationRepo.FindByScheduleAndActor(ctx, scheduleID, actor.ID())
	if err == nil {
		return &models.ApplyResult{Application: existing, Created: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !schedule.Joinable() {
		return nil, models.ErrorScheduleNotJoinable{ScheduleID: schedule.ID, Status: schedule.Status}
	}

	applicant, err := s.userRepo.GetByID(ctx, actor.ID())
	if err != nil {
		return nil, notFound(err, "user", actor.ID())
	}

	application := &models.Application{
		ScheduleID:  schedule.ID,
		ActorID:     actor.ID(),
		Status:      models.ApplicationPending,
		SubmittedAt: s.now(),
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "an application for this schedule already exists"}
		}
		return nil, err
	}
	s.log.Info("Application submitted", "application_id", application.ID, "schedule_id", schedule.ID, "actor_id", actor.ID())

	s.emit(ctx, schedule.ProducerID, schedule.ID, models.NewApplicantMessage(*applicant, *schedule))

	application.Schedule = schedule
	return &models.ApplyResult{Application: application, Created: true}, nil
}

func (s *applicationService) Withdraw(ctx context.Context, identity models.Identity, scheduleID uint) error {
	actor, err := identity.AsActor()
	if err != nil {
		return err
	}

	application, err := s.applicationRepo.FindByScheduleAndActor(ctx, scheduleID, actor.ID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Resource: "application for schedule", ID: scheduleID}
		}
		return err
	}

	if err := application.CheckWithdraw(); err != nil {
		return err
	}
	if err := s.applicationRepo.Delete(ctx, application.ID); err != nil {
		return err
	}
	s.log.Info("Application withdrawn", "application_id", application.ID, "schedule_id", scheduleID)
	return nil
}

func (s *applicationService) Approve(ctx context.Context, identity models.Identity, applicationID uint) (*models.Application, error) {
	return s.decide(ctx, identity, applicationID, models.ApplicationConfirmed)
}

func (s *applicationService) Reject(ctx context.Context, identity models.Identity, applicationID uint) (*models.Application, error) {
	return s.decide(ctx, identity, applicationID, models.ApplicationRejected)
}

func (s *applicationService) decide(ctx context.Context, identity models.Identity, applicationID uint, next models.ApplicationStatus) (*models.Application, error) {
	producer, err := identity.AsProducer()
	if err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err, "application", applicationID)
	}
	if application.Schedule == nil || !application.Schedule.IsOwnedBy(producer.ID()) {
		return nil, models.ErrorForbidden{Message: "only the owning producer can decide on this application"}
	}

	if err := application.Decide(next, s.now()); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateDecision(ctx, application); err != nil {
		return nil, err
	}
	s.log.Info("Application decided", "application_id", application.ID, "status", next)

	s.emit(ctx, application.ActorID, application.ScheduleID, models.NewDecisionMessage(next, *application.Schedule))
	return application, nil
}

func (s *applicationService) ListAvailable(ctx context.Context, identity models.Identity) ([]models.Schedule, error) {
	actor, err := identity.AsActor()
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.ListAvailableExcludingActor(ctx, actor.ID())
}

func (s *applicationService) ActorDashboard(ctx context.Context, identity models.Identity, today time.Time) (*models.ActorDashboard, error) {
	actor, err := identity.AsActor()
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListByActor(ctx, actor.ID())
	if err != nil {
		return nil, err
	}

	return &models.ActorDashboard{
		Applications: applications,
		Reminders:    models.ActorReminders(applications, today),
	}, nil
}

// emit runs after the transition is stored. A failed emit is logged and does
// not undo the transition.
func (s *applicationService) emit(ctx context.Context, userID, scheduleID uint, message string) {
	if err := s.notifier.Notify(ctx, userID, scheduleID, message); err != nil {
		s.log.Error("Failed to emit notification", "user_id", userID, "schedule_id", scheduleID, "error", err)
	}
}
