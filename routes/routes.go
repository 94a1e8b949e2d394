package routes

import (
	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/controllers"
	"github.com/josielsoaresoficial/gym-jm-sub001/middlewares"
	"github.com/josielsoaresoficial/gym-jm-sub001/services"
	"github.com/josielsoaresoficial/gym-jm-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "Webhook-Signature", "X-Cron-Secret"},
	}))

	db := config.DB

	push, err := services.NewPushService(db)
	if err != nil {
		logrus.WithError(err).Warn("push service unavailable, notifications disabled")
	}

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(db, hub, push)

	statsCtrl := controllers.NewStatsController(services.NewStatsService(db), services.NewMealStatsService(db))
	adminCtrl := controllers.NewAdminController(services.NewAdminService(db))
	altCtrl := controllers.NewAlternativesController(services.NewAlternativesService(db))
	notifCtrl := controllers.NewNotificationController(push)
	rtCtrl := controllers.NewRealtimeController(hub)
	fnCtrl := controllers.NewFunctionsController(
		services.NewCleanupService(utils.NewS3ObjectStore()),
		services.NewReminderService(db),
	)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Webhooks and scheduled functions (authenticated by signature/secret)
	r.POST("/webhooks/email-confirmation", controllers.EmailConfirmationWebhook)
	r.POST("/functions/reminders", fnCtrl.RunReminders)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.POST("/workouts", controllers.LogWorkout)
		user.GET("/workouts", controllers.ListWorkouts)
		user.DELETE("/workouts/:id", controllers.DeleteWorkout)

		user.GET("/stats/daily", statsCtrl.GetDailyStats)
		user.GET("/stats/weekly", statsCtrl.GetWeeklyStats)
		user.GET("/stats/total", statsCtrl.GetTotalStats)
		user.GET("/stats/top-exercises", statsCtrl.GetTopExercises)
		user.GET("/stats/progress", statsCtrl.GetProgressSeries)
		user.GET("/stats/muscles", statsCtrl.GetMuscleActivity)
		user.GET("/stats/macros/daily", statsCtrl.GetDailyMacros)
		user.GET("/stats/macros/weekly", statsCtrl.GetWeeklyMacros)

		user.POST("/meals", controllers.LogMeal)
		user.GET("/meals", controllers.ListMeals)
		user.PUT("/meals/:id", controllers.UpdateMeal)
		user.DELETE("/meals/:id", controllers.DeleteMeal)

		user.POST("/foods", controllers.CreateCustomFood)
		user.GET("/foods", controllers.ListCustomFoods)
		user.PUT("/foods/:id", controllers.UpdateCustomFood)
		user.DELETE("/foods/:id", controllers.DeleteCustomFood)

		user.POST("/hydration", controllers.LogWater)
		user.GET("/hydration/today", controllers.GetTodayHydration)
		user.DELETE("/hydration/:id", controllers.DeleteHydrationLog)

		user.POST("/measurements", controllers.AddMeasurement)
		user.GET("/measurements", controllers.ListMeasurements)
		user.GET("/measurements/latest", controllers.GetLatestMeasurement)
		user.DELETE("/measurements/:id", controllers.DeleteMeasurement)

		user.POST("/photos", controllers.AddBodyPhoto)
		user.GET("/photos", controllers.ListBodyPhotos)
		user.DELETE("/photos/:id", controllers.DeleteBodyPhoto)

		user.POST("/goals", controllers.CreateWeightGoal)
		user.GET("/goals", controllers.ListWeightGoals)
		user.GET("/goals/active", controllers.GetActiveWeightGoal)
		user.PUT("/goals/:id/progress", controllers.UpdateGoalProgress)

		user.GET("/characters", controllers.GetCharacterCatalog)
		user.GET("/characters/current", controllers.GetCurrentCharacter)
		user.PUT("/characters/current", controllers.SelectCharacter)

		user.GET("/notifications/preferences", notifCtrl.GetPreferences)
		user.PUT("/notifications/preferences", notifCtrl.UpdatePreferences)
		user.POST("/notifications/devices", notifCtrl.RegisterDevice)
		user.POST("/notifications/toggle", notifCtrl.ToggleNotifications)
		user.GET("/notifications/alerts", notifCtrl.ListAlerts)

		user.POST("/exercise-alternatives", altCtrl.GetAlternatives)

		user.GET("/ws", rtCtrl.Connect)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/stats", adminCtrl.GetStats)
		admin.POST("/functions/cleanup", fnCtrl.RunCleanup)
	}

	return r
}
