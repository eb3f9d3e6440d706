package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes wires the landing page counts.
func SetupDashboardRoutes(router *gin.Engine) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", controllers.GetDashboard)
	}
}
