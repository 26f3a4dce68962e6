package handlers

import (
	"net/http"

	"shoot-scheduler/helper"
	"shoot-scheduler/models"
	"shoot-scheduler/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: httpHelper}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

// Logout only acknowledges: tokens are stateless and the client drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), identity.ID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

var dashboardPaths = map[models.UserRole]string{
	models.RoleProducer: "/api/v1/producer/dashboard",
	models.RoleActor:    "/api/v1/actor/schedules",
	models.RoleEditor:   "/api/v1/editor/dashboard",
}

// Dashboard redirects the caller to the landing page of their role.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	identity, ok := identityOrAbort(c, h.Helper)
	if !ok {
		return
	}

	path, ok := dashboardPaths[identity.Role]
	if !ok {
		h.Helper.SendForbiddenError(c, "Unknown role", h.Helper.EmptyJsonMap())
		return
	}
	c.Redirect(http.StatusSeeOther, path)
}
