package models

import (
	"fmt"
	"time"
)

type Notification struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ScheduleID uint      `json:"schedule_id" gorm:"not null;index"`
	Schedule   *Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func NewApplicantMessage(actor User, schedule Schedule) string {
	return fmt.Sprintf("Actor %s applied to join schedule %q.", actor.DisplayName(), schedule.Title)
}

func NewDecisionMessage(status ApplicationStatus, schedule Schedule) string {
	verdict := "accepted"
	if status == ApplicationRejected {
		verdict = "rejected"
	}
	return fmt.Sprintf("Your application for %q was %s.", schedule.Title, verdict)
}

func NewReminderMessage(schedule Schedule) string {
	return fmt.Sprintf("Reminder: shoot '%s' tomorrow at %s in %s",
		schedule.Title, FormatTime(schedule.Time), schedule.Location)
}
