package handlers

import (
	"shoot-scheduler/helper"
	"shoot-scheduler/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService services.TaskService
	Helper      *helper.HTTPHelper
}

func NewTaskHandler(taskService services.TaskService, httpHelper *helper.HTTPHelper) *TaskHandler {
	return &TaskHandler{taskService: taskService, Helper: httpHelper}
}

func (h *TaskHandler) EditorDashboard(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	dashboard, err := h.taskService.EditorDashboard(c.Request.Context(), identity)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Editor dashboard loaded", dashboard)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Complete(c.Request.Context(), identity, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Task completed", task)
}
