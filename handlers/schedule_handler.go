package handlers

import (
	"shoot-scheduler/helper"
	"shoot-scheduler/models"
	"shoot-scheduler/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
	Helper          *helper.HTTPHelper
	today           Today
}

func NewScheduleHandler(scheduleService services.ScheduleService, httpHelper *helper.HTTPHelper, today Today) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, Helper: httpHelper, today: today}
}

func (h *ScheduleHandler) ProducerDashboard(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	dashboard, err := h.scheduleService.ProducerDashboard(c.Request.Context(), identity, h.today())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Producer dashboard loaded", dashboard)
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), identity, fields)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Schedule created", schedule)
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Get(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Schedule loaded", schedule)
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Edit(c.Request.Context(), identity, id, fields)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Schedule updated", schedule)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), identity, id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Schedule deleted", h.Helper.EmptyJsonMap())
}

func (h *ScheduleHandler) CompleteSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Complete(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Schedule marked as completed", schedule)
}

func (h *ScheduleHandler) CloseSchedule(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.Close(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Registration closed", schedule)
}

func (h *ScheduleHandler) ConfirmedActors(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	actors, err := h.scheduleService.ConfirmedActors(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	if actors == nil {
		actors = []models.User{}
	}

	h.Helper.SendSuccess(c, "Confirmed actors loaded", actors)
}

func (h *ScheduleHandler) bindFields(c *gin.Context) (models.ScheduleFields, bool) {
	var req models.ScheduleRequest
	if !h.Helper.BindJSON(c, &req) {
		return models.ScheduleFields{}, false
	}
	fields, err := req.Fields()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return models.ScheduleFields{}, false
	}
	return fields, true
}
