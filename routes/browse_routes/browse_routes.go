package browse_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nickdelicto/nursejobs-backend/controllers/browse/jobs_controller"
	"github.com/nickdelicto/nursejobs-backend/controllers/browse/stats_controller"
)

// SetupBrowseRoutes registers the public browse surface (no auth required)
func SetupBrowseRoutes(router *gin.RouterGroup) {
	browse := router.Group("/browse")
	{
		browse.GET("/stats", stats_controller.GetBrowseStats) // Facet counts
		browse.GET("/resolve/:dimension/:slug", stats_controller.ResolveSlug)
	}

	jobs := browse.Group("/jobs")
	{
		jobs.GET("", jobs_controller.GetJobs)        // List with filters
		jobs.GET("/:id", jobs_controller.GetJobByID) // Single job
	}
}
