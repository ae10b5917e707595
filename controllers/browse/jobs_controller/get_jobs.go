package jobs_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickdelicto/nursejobs-backend/facets"
	"github.com/nickdelicto/nursejobs-backend/models"
)

// GetJobs godoc
// @Summary Get active job listings with filters
// @Description Retrieve active listings filtered by state, specialty, job type, experience level, shift type, employer, and free-text search. Taxonomy filters are canonical-aware: filtering by "Per Diem" matches every raw alias that normalizes to it.
// @Tags Browse - Jobs
// @Produce json
// @Param state query string false "2-letter state code (case-insensitive)"
// @Param specialty query string false "Specialty (canonical or raw alias)"
// @Param jobType query string false "Job type (canonical or raw alias)"
// @Param experienceLevel query string false "Experience level (canonical or raw alias)"
// @Param shiftType query string false "Shift type (canonical or raw alias)"
// @Param employerSlug query string false "Employer slug (exact match)"
// @Param search query string false "Free-text search (title or specialty substring)"
// @Param sortBy query string false "Sort by field (newest, title)" default(newest)
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse "Jobs fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /browse/jobs [get]
func GetJobs(c *gin.Context) {
	page, limit := parsePagination(c)

	filterSet := models.FilterSetFromQuery(c)
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	// Every active filter applies here; nothing is left out
	predicate := facets.Compose(filterSet, facets.ExcludeNone)
	orderClause := buildJobsOrderClause(sortBy, sortOrder)

	jobs, totalCount, err := fetchJobsFromDB(c, predicate, orderClause, page, limit)
	if err != nil {
		log.Printf("ERROR in fetchJobsFromDB: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch jobs"))
		return
	}

	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Jobs fetched successfully",
		jobs,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
