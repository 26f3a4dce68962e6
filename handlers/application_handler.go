package handlers

import (
	"shoot-scheduler/helper"
	"shoot-scheduler/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
	Helper             *helper.HTTPHelper
	today              Today
}

func NewApplicationHandler(applicationService services.ApplicationService, httpHelper *helper.HTTPHelper, today Today) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, Helper: httpHelper, today: today}
}

// MySchedules is the actor landing page: own applications plus tomorrow's reminders.
func (h *ApplicationHandler) MySchedules(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	dashboard, err := h.applicationService.ActorDashboard(c.Request.Context(), identity, h.today())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Actor schedules loaded", dashboard)
}

func (h *ApplicationHandler) AvailableSchedules(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	schedules, err := h.applicationService.ListAvailable(c.Request.Context(), identity)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Available schedules loaded", schedules)
}

func (h *ApplicationHandler) JoinSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	scheduleID, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	result, err := h.applicationService.Apply(c.Request.Context(), identity, scheduleID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if !result.Created {
		h.Helper.SendInfo(c, "You have already applied to this schedule", result)
		return
	}
	h.Helper.SendCreated(c, "Application submitted", result)
}

func (h *ApplicationHandler) LeaveSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	scheduleID, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Request.Context(), identity, scheduleID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Application withdrawn", h.Helper.EmptyJsonMap())
}

func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.Approve(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Application approved", application)
}

func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.Reject(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Application rejected", application)
}
