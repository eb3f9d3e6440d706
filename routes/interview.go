package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupInterviewRoutes wires interview scheduling.
func SetupInterviewRoutes(router *gin.Engine) {
	interview := router.Group("/interview")
	interview.Use(middlewares.AuthMiddleware())
	{
		interview.GET("", controllers.GetInterviews)
		interview.POST("", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "RECRUITER", "TEAMLEAD"), controllers.ScheduleInterview)
		interview.PUT("/:id", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "RECRUITER", "TEAMLEAD"), controllers.UpdateInterview)
	}
}
