package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationConfirmed ApplicationStatus = "confirmed"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// A decided application may be decided again; the later decision overwrites the earlier one.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:   {ApplicationConfirmed, ApplicationRejected},
	ApplicationConfirmed: {ApplicationConfirmed, ApplicationRejected},
	ApplicationRejected:  {ApplicationConfirmed, ApplicationRejected},
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Withdrawable reports whether the actor may still delete the application.
func (s ApplicationStatus) Withdrawable() bool {
	return s == ApplicationPending
}

type Application struct {
	ID          uint              `json:"id" gorm:"primarykey"`
	ScheduleID  uint              `json:"schedule_id" gorm:"not null;uniqueIndex:idx_application_schedule_actor"`
	Schedule    *Schedule         `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	ActorID     uint              `json:"actor_id" gorm:"not null;uniqueIndex:idx_application_schedule_actor;index"`
	Actor       *User             `json:"actor,omitempty" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
	Status      ApplicationStatus `json:"status" gorm:"size:16;not null;default:'pending';index"`
	SubmittedAt time.Time         `json:"submitted_at" gorm:"not null"`
	RespondedAt *time.Time        `json:"responded_at"`
}

// Decide records the producer's decision at the given time.
func (a *Application) Decide(next ApplicationStatus, at time.Time) error {
	if next == ApplicationPending || !a.Status.CanTransitionTo(next) {
		return ErrorInvalidTransition{Entity: "application", From: string(a.Status), To: string(next)}
	}
	a.Status = next
	a.RespondedAt = &at
	return nil
}

func (a Application) CheckWithdraw() error {
	if !a.Status.Withdrawable() {
		return ErrorInvalidTransition{Entity: "application", From: string(a.Status), To: "withdrawn"}
	}
	return nil
}
