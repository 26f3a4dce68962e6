package models

import (
	"errors"
	"fmt"
)

// ErrorForbidden means the caller's role or ownership does not allow the operation.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	if e.Message == "" {
		return "forbidden"
	}
	return e.Message
}

// ErrorRoleViolation is the Forbidden case caused by a role mismatch.
type ErrorRoleViolation struct {
	Required UserRole
	Actual   UserRole
}

func (e ErrorRoleViolation) Error() string {
	return fmt.Sprintf("only %s users can perform this action", e.Required)
}

type ErrorNotFound struct {
	Resource string
	ID       uint
}

func (e ErrorNotFound) Error() string {
	if e.ID == 0 {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ErrorInvalidTransition is returned when the current state does not permit the operation.
type ErrorInvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e ErrorInvalidTransition) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.From, e.To)
}

type ErrorScheduleNotJoinable struct {
	ScheduleID uint
	Status     ScheduleStatus
}

func (e ErrorScheduleNotJoinable) Error() string {
	return fmt.Sprintf("registration for schedule %d is %s", e.ScheduleID, e.Status)
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Field + ": " + e.Message
}

// IsForbidden reports whether err is a Forbidden or RoleViolation error.
func IsForbidden(err error) bool {
	var forbidden ErrorForbidden
	var role ErrorRoleViolation
	return errors.As(err, &forbidden) || errors.As(err, &role)
}

func IsNotFound(err error) bool {
	var nf ErrorNotFound
	return errors.As(err, &nf)
}
