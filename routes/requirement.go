package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRequirementRoutes wires client job requirements.
func SetupRequirementRoutes(router *gin.Engine) {
	requirement := router.Group("/requirement")
	requirement.Use(middlewares.AuthMiddleware())
	{
		requirement.GET("", controllers.GetRequirements)
		requirement.GET("/:id", controllers.GetRequirement)
		requirement.POST("", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "BDM"), controllers.CreateRequirement)
		requirement.PUT("/:id", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "BDM"), controllers.UpdateRequirement)
		requirement.PUT("/:id/assign", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "BDM", "TEAMLEAD"), controllers.AssignRequirement)
		requirement.DELETE("/:id", middlewares.RBACMiddleware("requirement", "delete"), controllers.DeleteRequirement)
	}
}
