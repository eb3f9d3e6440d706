package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupEmployeeRoutes wires the employee directory.
func SetupEmployeeRoutes(router *gin.Engine) {
	employee := router.Group("/employee")
	employee.Use(middlewares.AuthMiddleware())
	{
		employee.GET("", controllers.GetEmployees)
		employee.GET("/export", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "HR"), controllers.ExportEmployees)
		employee.GET("/:id", controllers.GetEmployee)
		employee.POST("", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "HR"), controllers.CreateEmployee)
		employee.PUT("/:id", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "HR"), controllers.UpdateEmployee)
		employee.DELETE("/:id", middlewares.RBACMiddleware("employee", "delete"), controllers.DeleteEmployee)
	}
}
