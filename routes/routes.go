package routes

import (
	"jd-portal-api/controllers"
	"jd-portal-api/middleware"
	"jd-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "JD Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Job descriptions
			jobs := protected.Group("/job-descriptions")
			{
				jobs.GET("", controllers.GetJobDescriptions)
				jobs.GET("/recent", controllers.GetRecentJobDescriptions)
				jobs.GET("/users", controllers.GetUsers)
				jobs.GET("/:id", controllers.GetJobDescription)
				jobs.GET("/:id/cvs", controllers.GetCVsForJobDescription)
				jobs.GET("/:id/download", controllers.DownloadJobDescriptionFile)

				// Only managers can create/update/delete job descriptions
				jobs.POST("", middleware.RequireRole(models.RoleManager), controllers.CreateJobDescription)
				jobs.PUT("/:id", middleware.RequireRole(models.RoleManager), controllers.UpdateJobDescription)
				jobs.DELETE("/:id", middleware.RequireRole(models.RoleManager), controllers.DeleteJobDescription)
			}

			// CV submissions
			cvs := protected.Group("/cv-submissions")
			{
				cvs.GET("/recent", controllers.GetRecentCVSubmissions)
				cvs.GET("/pending", controllers.GetPendingCVSubmissions)
				cvs.GET("/:id", controllers.GetCVSubmission)
				cvs.GET("/:id/download", controllers.DownloadCV)
				cvs.GET("/:id/preview", controllers.PreviewCV)

				// Only HR can upload, only managers review/delete
				cvs.POST("", middleware.RequireRole(models.RoleHR), controllers.UploadCV)
				cvs.PUT("/:id/review", middleware.RequireRole(models.RoleManager), controllers.ReviewCV)
				cvs.DELETE("/:id", middleware.RequireRole(models.RoleManager), controllers.DeleteCVSubmission)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/count", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Interview scheduling
			interviews := protected.Group("/interview-statuses")
			{
				interviews.GET("", controllers.GetInterviewStatuses)
				interviews.GET("/interviewers", controllers.GetInterviewers)
				interviews.GET("/:id", controllers.GetInterviewStatus)
				interviews.POST("", middleware.RequireRole(models.RoleManager, models.RoleHR), controllers.CreateInterviewStatus)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}
		}
	}
}
