package routes

import (
	"os"
	"strings"

	"github.com/Rishikeshkrishna20/Fitness/controllers"
	"github.com/Rishikeshkrishna20/Fitness/middlewares"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PATCH("/weight", controllers.UpdateWeight)
		user.GET("/weight-history", controllers.GetWeightHistory)
	}

	health := r.Group("/health")
	health.Use(middlewares.AuthMiddleware())
	{
		health.GET("/workouts", controllers.ListWorkouts)
		health.POST("/workouts", controllers.CreateWorkout)
		health.DELETE("/workouts/:id", controllers.DeleteWorkout)

		health.GET("/water", controllers.ListWater)
		health.POST("/water", controllers.CreateWater)
		health.DELETE("/water/:id", controllers.DeleteWater)
		health.GET("/water/daily-total", controllers.DailyWaterTotal)

		health.GET("/meals", controllers.ListMeals)
		health.POST("/meals", controllers.CreateMeal)
		health.DELETE("/meals/:id", controllers.DeleteMeal)

		health.GET("/sleep", controllers.ListSleep)
		health.POST("/sleep", controllers.CreateSleep)

		health.GET("/vitals", controllers.ListVitals)
		health.POST("/vitals", controllers.CreateVital)

		health.GET("/moods", controllers.ListMoods)
		health.POST("/moods", controllers.CreateMood)

		health.GET("/medications", controllers.ListMedications)
		health.POST("/medications", controllers.CreateMedication)
		health.PATCH("/medications/:id/taken", controllers.SetMedicationTaken)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.ListGoals)
		goals.POST("", controllers.CreateGoal)
		goals.PUT("/:id", controllers.UpdateGoal)
		goals.DELETE("/:id", controllers.DeleteGoal)
		goals.GET("/progress", controllers.GoalProgress)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", controllers.GetDashboard)
		dashboard.GET("/alerts", controllers.ListAlerts)
	}

	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/daily", controllers.GetDailyReport)
		reports.GET("/weekly", controllers.GetWeeklyReport)
		reports.GET("/saved", controllers.ListSavedReports)
		reports.GET("/saved/:id", controllers.GetSavedReport)
		reports.DELETE("/saved/:id", controllers.DeleteSavedReport)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/users", controllers.AdminListUsers)
		admin.PATCH("/users/:id/disabled", controllers.AdminSetUserDisabled)

		admin.GET("/workouts", controllers.AdminListWorkouts)
		admin.DELETE("/workouts/:id", controllers.AdminDeleteWorkout)

		admin.GET("/water", controllers.AdminListWater)
		admin.DELETE("/water/:id", controllers.AdminDeleteWater)

		admin.GET("/meals", controllers.AdminListMeals)
		admin.DELETE("/meals/:id", controllers.AdminDeleteMeal)

		admin.GET("/sleep", controllers.AdminListSleep)
		admin.DELETE("/sleep/:id", controllers.AdminDeleteSleep)

		admin.GET("/vitals", controllers.AdminListVitals)
		admin.DELETE("/vitals/:id", controllers.AdminDeleteVital)

		admin.GET("/moods", controllers.AdminListMoods)
		admin.DELETE("/moods/:id", controllers.AdminDeleteMood)

		admin.GET("/medications", controllers.AdminListMedications)
		admin.DELETE("/medications/:id", controllers.AdminDeleteMedication)
	}

	rt := controllers.NewRealtimeController(hub)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/dashboard", rt.DashboardWS)
	}

	if push != nil {
		dc := controllers.NewDeviceController(push)
		devices := r.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("/register", dc.Register)
			devices.PATCH("/:id/disable", dc.Disable)
		}
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		d := controllers.NewDevController(push)
		dev.POST("/push-test", d.PushTest)
		dev.POST("/seed", d.Seed)
	}

	return r
}
