package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleProducer UserRole = "producer"
	RoleActor    UserRole = "actor"
	RoleEditor   UserRole = "editor"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleProducer, RoleActor, RoleEditor:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	Phone     string    `json:"phone" gorm:"size:30"`
	Role      UserRole  `json:"role" gorm:"size:20;not null;default:'actor';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the full name when one is set, otherwise the username.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// Identity is the already-authenticated caller of a service operation.
type Identity struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Producer, Actor and Editor are identities whose role has been checked.
// They can only be obtained through the As* narrowing methods.
type Producer struct{ id uint }
type Actor struct{ id uint }
type Editor struct{ id uint }

func (p Producer) ID() uint { return p.id }
func (a Actor) ID() uint    { return a.id }
func (e Editor) ID() uint   { return e.id }

func (i Identity) AsProducer() (Producer, error) {
	if i.Role != RoleProducer {
		return Producer{}, ErrorRoleViolation{Required: RoleProducer, Actual: i.Role}
	}
	return Producer{id: i.ID}, nil
}

func (i Identity) AsActor() (Actor, error) {
	if i.Role != RoleActor {
		return Actor{}, ErrorRoleViolation{Required: RoleActor, Actual: i.Role}
	}
	return Actor{id: i.ID}, nil
}

func (i Identity) AsEditor() (Editor, error) {
	if i.Role != RoleEditor {
		return Editor{}, ErrorRoleViolation{Required: RoleEditor, Actual: i.Role}
	}
	return Editor{id: i.ID}, nil
}
