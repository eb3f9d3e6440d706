package routes

import (
	"staffhub/controllers"
	"staffhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupCandidateRoutes wires the candidate pipeline.
func SetupCandidateRoutes(router *gin.Engine) {
	candidate := router.Group("/candidate")
	candidate.Use(middlewares.AuthMiddleware())
	{
		candidate.GET("", controllers.GetCandidates)
		candidate.GET("/:id", controllers.GetCandidate)
		candidate.POST("", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "RECRUITER", "TEAMLEAD"), controllers.CreateCandidate)
		candidate.PUT("/:id", middlewares.RequireRoles("SUPERADMIN", "ADMIN", "RECRUITER", "TEAMLEAD"), controllers.UpdateCandidate)
		candidate.DELETE("/:id", middlewares.RBACMiddleware("candidate", "delete"), controllers.DeleteCandidate)
	}
}
