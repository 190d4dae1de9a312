package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "civicdesk/internal/interfaces/http/handlers/complaint"
	"civicdesk/internal/interfaces/http/middleware"
	"civicdesk/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
	SubmitRateLimit  gin.HandlerFunc // may be nil when rate limiting is disabled
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/api/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		if config.SubmitRateLimit != nil {
			complaints.POST("", config.SubmitRateLimit, config.ComplaintHandler.SubmitComplaint)
		} else {
			complaints.POST("", config.ComplaintHandler.SubmitComplaint)
		}
		complaints.GET("",
			config.ComplaintHandler.ListComplaints)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		complaints.GET("/priority",
			config.ComplaintHandler.ListByPriority)
		complaints.GET("/stats",
			config.ComplaintHandler.GetStats)

		// Using PATCH for state changes as per RESTful best practices
		complaints.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.ComplaintHandler.UpdateStatus)

		// Generic parameterized routes (must come LAST)
		complaints.GET("/:id",
			config.ComplaintHandler.GetComplaint)
		complaints.DELETE("/:id",
			authorization.RequireAdmin(),
			config.ComplaintHandler.DeleteComplaint)
	}
}
