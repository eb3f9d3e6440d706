package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupLeaveRoutes wires leave requests and review.
func SetupLeaveRoutes(router *gin.Engine) {
	leave := router.Group("/leave")
	leave.Use(middlewares.AuthMiddleware())
	{
		leave.GET("", controllers.GetLeaves)
		leave.POST("", controllers.ApplyLeave)
		leave.PUT("/:id/review", middlewares.RBACMiddleware("leave", "review"), controllers.ReviewLeave)
	}
}
