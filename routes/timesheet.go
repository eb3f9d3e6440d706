package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupTimesheetRoutes wires weekly timesheets and review.
func SetupTimesheetRoutes(router *gin.Engine) {
	timesheet := router.Group("/timesheet")
	timesheet.Use(middlewares.AuthMiddleware())
	{
		timesheet.GET("", controllers.GetTimesheets)
		timesheet.POST("", controllers.SubmitTimesheet)
		timesheet.PUT("/:id/review", middlewares.RBACMiddleware("timesheet", "review"), controllers.ReviewTimesheet)
	}
}
