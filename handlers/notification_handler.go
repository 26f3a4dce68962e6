package handlers

import (
	"shoot-scheduler/helper"
	"shoot-scheduler/models"
	"shoot-scheduler/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	Helper              *helper.HTTPHelper
}

func NewNotificationHandler(notificationService services.NotificationService, httpHelper *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, Helper: httpHelper}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	var params models.NotificationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	notifications, total, err := h.notificationService.List(c.Request.Context(), identity, params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notifications loaded", map[string]interface{}{
		"notifications": notifications,
		"paging":        h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}
