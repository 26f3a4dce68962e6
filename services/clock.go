package services

import (
	"errors"
	"time"

	"shoot-scheduler/models"

	"gorm.io/gorm"
)

// Clock supplies "now" to the services so tests can pin it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

func orSystemClock(clock Clock) Clock {
	if clock == nil {
		return SystemClock
	}
	return clock
}

// notFound maps gorm's missing-row error onto the domain NotFound error.
func notFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: resource, ID: id}
	}
	return err
}
