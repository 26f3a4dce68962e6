package handlers

import (
	"time"

	"shoot-scheduler/helper"
	"shoot-scheduler/middleware"
	"shoot-scheduler/models"

	"github.com/gin-gonic/gin"
)

// Today returns the current instant in the location that defines calendar days for reminders.
type Today func() time.Time

func TodayIn(loc *time.Location, clock func() time.Time) Today {
	return func() time.Time {
		return clock().In(loc)
	}
}

func identityOrAbort(c *gin.Context, httpHelper *helper.HTTPHelper) (models.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		httpHelper.SendUnauthorizedError(c, "User not found in context", httpHelper.EmptyJsonMap())
	}
	return identity, ok
}
