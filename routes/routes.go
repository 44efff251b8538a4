package routes

import (
	"net/http"

	"doppelx/controllers"
	"doppelx/middleware"
	"doppelx/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup, responder services.Responder) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Digital Doppelgänger API is running!"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.Register())
		auth.POST("/login", controllers.Login())
		auth.GET("/profile", middleware.Authenticate(), controllers.GetProfile())
		auth.PUT("/avatar", middleware.Authenticate(), controllers.UpdateAvatar())
	}

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		activities := protected.Group("/activities")
		{
			activities.GET("", controllers.GetActivities())
			activities.GET("/stats", controllers.GetActivityStats())
			activities.POST("", controllers.CreateActivity())
			activities.PUT("/:id", controllers.UpdateActivity())
			activities.DELETE("/:id", controllers.DeleteActivity())
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", controllers.GetTasks())
			tasks.POST("", controllers.CreateTask())
			tasks.PUT("/:id", controllers.UpdateTask())
			tasks.DELETE("/:id", controllers.DeleteTask())
			tasks.PATCH("/:id/time", controllers.UpdateTimeSpent())
		}

		schedules := protected.Group("/schedules")
		{
			schedules.GET("", controllers.GetSchedules())
			schedules.POST("", controllers.CreateSchedule())
			schedules.POST("/generate", controllers.GenerateSchedule())
			schedules.GET("/:id", controllers.GetSchedule())
			schedules.PUT("/:id", controllers.UpdateSchedule())
			schedules.DELETE("/:id", controllers.DeleteSchedule())
		}

		sessions := protected.Group("/study-sessions")
		{
			sessions.GET("", controllers.GetStudySessions())
			sessions.GET("/stats", controllers.GetStudyStats())
			sessions.POST("", controllers.CreateStudySession())
			sessions.PUT("/:id", controllers.UpdateStudySession())
		}

		doppelganger := protected.Group("/doppelganger")
		{
			doppelganger.GET("", controllers.GetAnalyses())
			doppelganger.GET("/latest", controllers.GetLatestAnalysis())
			doppelganger.POST("", controllers.CreateAnalysis())
			doppelganger.POST("/simulate", controllers.SimulateScenario())
		}

		chat := protected.Group("/chat")
		{
			chat.GET("", controllers.GetChatHistory())
			chat.POST("/message", controllers.SendMessage(responder))
			chat.DELETE("", controllers.ClearChat())
		}
	}
}
