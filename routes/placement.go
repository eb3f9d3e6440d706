package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupPlacementRoutes wires placements.
func SetupPlacementRoutes(router *gin.Engine) {
	placement := router.Group("/placement")
	placement.Use(middlewares.AuthMiddleware())
	{
		placement.GET("", controllers.GetPlacements)
		placement.POST("", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "RECRUITER", "TEAMLEAD"), controllers.CreatePlacement)
		placement.PUT("/:id", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "TEAMLEAD"), controllers.UpdatePlacement)
	}
}
