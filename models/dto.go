package models

import "time"

type RegisterRequest struct {
	Username        string   `json:"username" validate:"required,min=3,max=150"`
	Email           string   `json:"email" validate:"required,email"`
	FirstName       string   `json:"first_name" validate:"required,max=150"`
	LastName        string   `json:"last_name" validate:"required,max=150"`
	Phone           string   `json:"phone" validate:"max=30"`
	Role            UserRole `json:"role" validate:"required,oneof=producer actor editor"`
	Password        string   `json:"password" validate:"required,min=8"`
	PasswordConfirm string   `json:"password_confirm" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ScheduleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description"`
	Script      string `json:"script"`
}

func (r ScheduleRequest) Fields() (ScheduleFields, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return ScheduleFields{}, err
	}
	clock, err := ParseClock(r.Time)
	if err != nil {
		return ScheduleFields{}, err
	}
	return ScheduleFields{
		Title:       r.Title,
		Date:        date,
		Time:        clock,
		Location:    r.Location,
		Description: r.Description,
		Script:      r.Script,
	}, nil
}

type CreateTaskRequest struct {
	ScheduleID  uint           `validate:"required"`
	EditorID    *uint          `validate:"omitempty"`
	SocialMedia SocialPlatform `validate:"required,oneof=instagram tiktok youtube"`
	Caption     string         `validate:"required"`
	FilmTitle   string         `validate:"required,max=200"`
	DueDate     time.Time      `validate:"required"`
}

type NotificationListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// ApplyResult tells a duplicate apply apart from a new one.
type ApplyResult struct {
	Application *Application `json:"application"`
	Created     bool         `json:"created"`
}

type ProducerDashboard struct {
	Schedules []Schedule `json:"schedules"`
	Reminders []Schedule `json:"reminders"`
}

type ActorDashboard struct {
	Applications []Application `json:"applications"`
	Reminders    []Schedule    `json:"reminders"`
}

type EditorDashboard struct {
	Tasks          []TaskView `json:"tasks"`
	CompletedTasks []TaskView `json:"completed_tasks"`
}
