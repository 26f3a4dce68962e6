package models

import "time"

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformYouTube   SocialPlatform = "youtube"
)

func (p SocialPlatform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

func (p SocialPlatform) DisplayName() string {
	switch p {
	case PlatformInstagram:
		return "Instagram"
	case PlatformTikTok:
		return "TikTok"
	case PlatformYouTube:
		return "YouTube"
	}
	return string(p)
}

type SocialMediaTask struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	ScheduleID  uint           `json:"schedule_id" gorm:"not null;index"`
	Schedule    *Schedule      `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	EditorID    *uint          `json:"editor_id" gorm:"index"`
	Editor      *User          `json:"editor,omitempty" gorm:"foreignKey:EditorID;constraint:OnDelete:CASCADE"`
	SocialMedia SocialPlatform `json:"social_media" gorm:"size:20;not null"`
	Caption     string         `json:"caption" gorm:"type:text;not null"`
	FilmTitle   string         `json:"film_title" gorm:"size:200;not null"`
	DueDate     time.Time      `json:"due_date" gorm:"not null;index"`
	IsCompleted bool           `json:"is_completed" gorm:"not null;default:false;index"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (t SocialMediaTask) IsAssignedTo(editorID uint) bool {
	return t.EditorID != nil && *t.EditorID == editorID
}

// IsOverdue is derived on every read and never stored.
func (t SocialMediaTask) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && t.DueDate.Before(now)
}

// Complete marks the task done. Completing twice only refreshes the timestamp.
func (t *SocialMediaTask) Complete(at time.Time) {
	t.IsCompleted = true
	t.CompletedAt = &at
}

func (t SocialMediaTask) String() string {
	return t.FilmTitle + " - " + t.SocialMedia.DisplayName()
}

// TaskView is a task as shown to its editor, with the overdue flag evaluated at read time.
type TaskView struct {
	SocialMediaTask
	IsOverdue bool `json:"is_overdue"`
}

func NewTaskViews(tasks []SocialMediaTask, now time.Time) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, TaskView{SocialMediaTask: t, IsOverdue: t.IsOverdue(now)})
	}
	return views
}
