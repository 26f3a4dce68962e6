package services

import (
	"time"

	"shoot-scheduler/config"
	"shoot-scheduler/models"

	"github.com/golang-jwt/jwt/v4"
)

func (s *ServiceTestSuite) authService() AuthService {
	settings := config.JWTSettings{Secret: "test-secret", ExpirationHours: 2}
	return NewAuthService(s.userRepo, settings, func() time.Time { return time.Now() })
}

func (s *ServiceTestSuite) registerRequest(username string) models.RegisterRequest {
	return models.RegisterRequest{
		Username:        username,
		Email:           username + "@studio.test",
		FirstName:       "Nina",
		LastName:        "Park",
		Role:            models.RoleActor,
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}

func (s *ServiceTestSuite) TestRegisterAndLogin() {
	auth := s.authService()

	registered, err := auth.Register(s.ctx, s.registerRequest("nina"))
	s.Require().NoError(err)
	s.NotEmpty(registered.Token)
	s.Equal(models.RoleActor, registered.User.Role)
	s.NotEqual("password123", registered.User.Password)

	loggedIn, err := auth.Login(s.ctx, models.LoginRequest{Username: "nina", Password: "password123"})
	s.Require().NoError(err)
	s.Equal(registered.User.ID, loggedIn.User.ID)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(loggedIn.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	s.Require().NoError(err)
	s.Equal("actor", claims["role"])
	s.EqualValues(registered.User.ID, claims["user_id"])
}

func (s *ServiceTestSuite) TestRegisterDuplicate() {
	auth := s.authService()
	_, err := auth.Register(s.ctx, s.registerRequest("nina"))
	s.Require().NoError(err)

	_, err = auth.Register(s.ctx, s.registerRequest("nina"))
	var conflict models.ErrorConflict
	s.ErrorAs(err, &conflict)

	sameEmail := s.registerRequest("nina2")
	sameEmail.Email = "NINA@studio.test"
	_, err = auth.Register(s.ctx, sameEmail)
	s.ErrorAs(err, &conflict)
}

func (s *ServiceTestSuite) TestRegisterRejectsUnknownRoleAndMismatch() {
	auth := s.authService()

	req := s.registerRequest("root")
	req.Role = "admin"
	_, err := auth.Register(s.ctx, req)
	var validation models.ErrorValidation
	s.ErrorAs(err, &validation)

	req = s.registerRequest("typo")
	req.PasswordConfirm = "password124"
	_, err = auth.Register(s.ctx, req)
	s.ErrorAs(err, &validation)
}

func (s *ServiceTestSuite) TestLoginWrongPassword() {
	auth := s.authService()
	_, err := auth.Register(s.ctx, s.registerRequest("nina"))
	s.Require().NoError(err)

	_, err = auth.Login(s.ctx, models.LoginRequest{Username: "nina", Password: "nope"})
	var unauthorized models.ErrorUnauthorized
	s.ErrorAs(err, &unauthorized)

	_, err = auth.Login(s.ctx, models.LoginRequest{Username: "ghost", Password: "nope"})
	s.ErrorAs(err, &unauthorized)
}

func (s *ServiceTestSuite) TestGetUserByIDNotFound() {
	_, err := s.authService().GetUserByID(s.ctx, 4242)

	s.True(models.IsNotFound(err))
}

func (s *ServiceTestSuite) TestNotificationListPaging() {
	schedule := s.createSchedule("Inbox", 2)
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.notifications.Notify(s.ctx, s.actor.ID, schedule.ID, "message"))
	}

	page, total, err := s.notifications.List(s.ctx, s.actor.Identity(), models.NotificationListParams{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.EqualValues(5, total)
	s.Len(page, 2)

	empty, total, err := s.notifications.List(s.ctx, s.producer.Identity(), models.NotificationListParams{})
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(empty)
}
