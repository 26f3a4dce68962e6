package services

import (
	"context"
	"time"

	"shoot-scheduler/logger"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"
)

type ScheduleService interface {
	Create(ctx context.Context, identity models.Identity, fields models.ScheduleFields) (*models.Schedule, error)
	Get(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error)
	Edit(ctx context.Context, identity models.Identity, id uint, fields models.ScheduleFields) (*models.Schedule, error)
	Delete(ctx context.Context, identity models.Identity, id uint) error
	Complete(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error)
	Close(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error)
	ConfirmedActors(ctx context.Context, identity models.Identity, id uint) ([]models.User, error)
	ProducerDashboard(ctx context.Context, identity models.Identity, today time.Time) (*models.ProducerDashboard, error)
}

type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	log          *logger.Logger
}

func NewScheduleService(scheduleRepo repositories.ScheduleRepository, log *logger.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		log:          log.With("service", "ScheduleService"),
	}
}

func (s *scheduleService) Create(ctx context.Context, identity models.Identity, fields models.ScheduleFields) (*models.Schedule, error) {
	producer, err := identity.AsProducer()
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		ProducerID: producer.ID(),
		Status:     models.ScheduleAvailable,
	}
	schedule.Apply(fields)

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.log.Info("Schedule created", "schedule_id", schedule.ID, "producer_id", producer.ID())
	return schedule, nil
}

// loadOwned checks role, existence and ownership, in that order.
func (s *scheduleService) loadOwned(ctx context.Context, identity models.Identity, id uint, withApplications bool) (*models.Schedule, error) {
	producer, err := identity.AsProducer()
	if err != nil {
		return nil, err
	}

	var schedule *models.Schedule
	if withApplications {
		schedule, err = s.scheduleRepo.GetWithApplications(ctx, id)
	} else {
		schedule, err = s.scheduleRepo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, notFound(err, "schedule", id)
	}

	if !schedule.IsOwnedBy(producer.ID()) {
		return nil, models.ErrorForbidden{Message: "only the owning producer can manage this schedule"}
	}
	return schedule, nil
}

func (s *scheduleService) Get(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error) {
	return s.loadOwned(ctx, identity, id, true)
}

func (s *scheduleService) Edit(ctx context.Context, identity models.Identity, id uint, fields models.ScheduleFields) (*models.Schedule, error) {
	schedule, err := s.loadOwned(ctx, identity, id, false)
	if err != nil {
		return nil, err
	}

	schedule.Apply(fields)
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if _, err := s.loadOwned(ctx, identity, id, false); err != nil {
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return notFound(err, "schedule", id)
	}
	s.log.Info("Schedule deleted", "schedule_id", id)
	return nil
}

func (s *scheduleService) Complete(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error) {
	return s.transition(ctx, identity, id, models.ScheduleCompleted)
}

func (s *scheduleService) Close(ctx context.Context, identity models.Identity, id uint) (*models.Schedule, error) {
	return s.transition(ctx, identity, id, models.ScheduleClosed)
}

func (s *scheduleService) transition(ctx context.Context, identity models.Identity, id uint, next models.ScheduleStatus) (*models.Schedule, error) {
	schedule, err := s.loadOwned(ctx, identity, id, false)
	if err != nil {
		return nil, err
	}

	from := schedule.Status
	if err := schedule.TransitionTo(next); err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	s.log.Info("Schedule status changed", "schedule_id", id, "from", from, "to", next)
	return schedule, nil
}

func (s *scheduleService) ConfirmedActors(ctx context.Context, identity models.Identity, id uint) ([]models.User, error) {
	schedule, err := s.loadOwned(ctx, identity, id, true)
	if err != nil {
		return nil, err
	}
	return schedule.ConfirmedActors(), nil
}

func (s *scheduleService) ProducerDashboard(ctx context.Context, identity models.Identity, today time.Time) (*models.ProducerDashboard, error) {
	producer, err := identity.AsProducer()
	if err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByProducer(ctx, producer.ID())
	if err != nil {
		return nil, err
	}

	return &models.ProducerDashboard{
		Schedules: schedules,
		Reminders: models.ProducerReminders(schedules, today),
	}, nil
}
