package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type ScheduleStatus string

const (
	ScheduleAvailable ScheduleStatus = "available"
	ScheduleClosed    ScheduleStatus = "closed"
	ScheduleCompleted ScheduleStatus = "completed"
)

// scheduleTransitions lists the states each schedule state may move to.
// Nothing leads back to available.
var scheduleTransitions = map[ScheduleStatus][]ScheduleStatus{
	ScheduleAvailable: {ScheduleClosed, ScheduleCompleted},
	ScheduleClosed:    {ScheduleClosed, ScheduleCompleted},
	ScheduleCompleted: {ScheduleClosed, ScheduleCompleted},
}

func (s ScheduleStatus) Valid() bool {
	_, ok := scheduleTransitions[s]
	return ok
}

func (s ScheduleStatus) CanTransitionTo(next ScheduleStatus) bool {
	for _, allowed := range scheduleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Schedule struct {
	ID           uint              `json:"id" gorm:"primarykey"`
	ProducerID   uint              `json:"producer_id" gorm:"not null;index"`
	Producer     *User             `json:"producer,omitempty" gorm:"foreignKey:ProducerID;constraint:OnDelete:CASCADE"`
	Title        string            `json:"title" gorm:"size:200;not null"`
	Date         datatypes.Date    `json:"date" gorm:"column:shoot_date;not null;index"`
	Time         datatypes.Time    `json:"time" gorm:"column:shoot_time;not null"`
	Location     string            `json:"location" gorm:"size:200;not null"`
	Description  string            `json:"description" gorm:"type:text"`
	Script       string            `json:"script" gorm:"type:text"`
	Status       ScheduleStatus    `json:"status" gorm:"size:20;not null;default:'available';index"`
	Applications []Application     `json:"applications,omitempty" gorm:"foreignKey:ScheduleID"`
	Tasks        []SocialMediaTask `json:"social_media_tasks,omitempty" gorm:"foreignKey:ScheduleID"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ScheduleFields holds the producer-editable content of a schedule.
type ScheduleFields struct {
	Title       string
	Date        datatypes.Date
	Time        datatypes.Time
	Location    string
	Description string
	Script      string
}

func (s *Schedule) Apply(f ScheduleFields) {
	s.Title = f.Title
	s.Date = f.Date
	s.Time = f.Time
	s.Location = f.Location
	s.Description = f.Description
	s.Script = f.Script
}

// TransitionTo moves the schedule to next or reports why it cannot.
func (s *Schedule) TransitionTo(next ScheduleStatus) error {
	if !s.Status.CanTransitionTo(next) {
		return ErrorInvalidTransition{Entity: "schedule", From: string(s.Status), To: string(next)}
	}
	s.Status = next
	return nil
}

func (s Schedule) IsOwnedBy(userID uint) bool {
	return s.ProducerID == userID
}

func (s Schedule) Joinable() bool {
	return s.Status == ScheduleAvailable
}

func (s Schedule) IsOn(day datatypes.Date) bool {
	return SameDate(s.Date, day)
}

// ConfirmedActors returns the actors of the preloaded confirmed applications.
func (s Schedule) ConfirmedActors() []User {
	var actors []User
	for _, app := range s.Applications {
		if app.Status == ApplicationConfirmed && app.Actor != nil {
			actors = append(actors, *app.Actor)
		}
	}
	return actors
}

func (s Schedule) HasConfirmedApplication() bool {
	for _, app := range s.Applications {
		if app.Status == ApplicationConfirmed {
			return true
		}
	}
	return false
}

func (s Schedule) String() string {
	return fmt.Sprintf("%s - %s %s", s.Title, FormatDate(s.Date), FormatTime(s.Time))
}
