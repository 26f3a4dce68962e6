package routes

import (
	"net/http"
	"time"

	"shoot-scheduler/config"
	"shoot-scheduler/handlers"
	"shoot-scheduler/helper"
	"shoot-scheduler/logger"
	"shoot-scheduler/middleware"
	"shoot-scheduler/models"
	"shoot-scheduler/repositories"
	"shoot-scheduler/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Options struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *logger.Logger
	Clock  services.Clock
}

func SetupRouter(opts Options) *gin.Engine {
	clock := opts.Clock
	if clock == nil {
		clock = services.SystemClock
	}
	log := opts.Logger
	httpHelper := helper.NewHTTPHelper()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(opts.DB)
	scheduleRepo := repositories.NewScheduleRepository(opts.DB)
	applicationRepo := repositories.NewApplicationRepository(opts.DB)
	taskRepo := repositories.NewTaskRepository(opts.DB)
	notificationRepo := repositories.NewNotificationRepository(opts.DB)

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo, log)
	authService := services.NewAuthService(userRepo, opts.Config.JWT, clock)
	scheduleService := services.NewScheduleService(scheduleRepo, log)
	applicationService := services.NewApplicationService(applicationRepo, scheduleRepo, userRepo, notificationService, clock, log)
	taskService := services.NewTaskService(taskRepo, scheduleRepo, userRepo, clock, log)

	// Initialize handlers
	today := handlers.TodayIn(opts.Config.Location(), clock)
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, httpHelper, today)
	applicationHandler := handlers.NewApplicationHandler(applicationService, httpHelper, today)
	taskHandler := handlers.NewTaskHandler(taskService, httpHelper)
	notificationHandler := handlers.NewNotificationHandler(notificationService, httpHelper)

	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(opts.Config.JWT, httpHelper))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/dashboard", authHandler.Dashboard)
			protected.GET("/notifications", notificationHandler.GetNotifications)

			producer := protected.Group("")
			producer.Use(middleware.RequireRole(httpHelper, models.RoleProducer))
			{
				producer.GET("/producer/dashboard", scheduleHandler.ProducerDashboard)
				producer.POST("/schedules", scheduleHandler.CreateSchedule)
				producer.GET("/schedules/:id", scheduleHandler.GetSchedule)
				producer.PUT("/schedules/:id", scheduleHandler.UpdateSchedule)
				producer.DELETE("/schedules/:id", scheduleHandler.DeleteSchedule)
				producer.GET("/schedules/:id/actors", scheduleHandler.ConfirmedActors)
				producer.POST("/schedules/:id/complete", scheduleHandler.CompleteSchedule)
				producer.POST("/schedules/:id/close", scheduleHandler.CloseSchedule)
				producer.POST("/applications/:id/approve", applicationHandler.ApproveApplication)
				producer.POST("/applications/:id/reject", applicationHandler.RejectApplication)
			}

			actor := protected.Group("")
			actor.Use(middleware.RequireRole(httpHelper, models.RoleActor))
			{
				actor.GET("/actor/schedules", applicationHandler.MySchedules)
				actor.GET("/actor/available", applicationHandler.AvailableSchedules)
				actor.POST("/schedules/:id/join", applicationHandler.JoinSchedule)
				actor.POST("/schedules/:id/leave", applicationHandler.LeaveSchedule)
			}

			editor := protected.Group("")
			editor.Use(middleware.RequireRole(httpHelper, models.RoleEditor))
			{
				editor.GET("/editor/dashboard", taskHandler.EditorDashboard)
				editor.POST("/tasks/:id/complete", taskHandler.CompleteTask)
			}
		}
	}

	return router
}
