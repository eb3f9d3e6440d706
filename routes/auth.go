package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes wires login, logout and the password reset flow. Everything
// except logout is reachable without a token.
func SetupAuthRoutes(router *gin.Engine) {
	router.POST("/login", controllers.Login)
	router.PUT("/logout/:userId", controllers.Logout)

	router.POST("/send-otp", controllers.SendOTP)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/update-password", controllers.UpdatePassword)

	reset := router.Group("/reset")
	{
		reset.POST("/back", controllers.ResetBack)
		reset.GET("/status", controllers.ResetStatus)
	}

	users := router.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("", middlewares.RequireRoles("SUPERADMIN", "ADMIN"), controllers.GetUsers)
		users.POST("", middlewares.RBACMiddleware("user", "write"), controllers.CreateUser)
		users.PUT("/:id/roles", middlewares.RBACMiddleware("user", "write"), controllers.UpdateUserRoles)
	}
}
