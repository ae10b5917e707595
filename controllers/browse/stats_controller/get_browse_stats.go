package stats_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickdelicto/nursejobs-backend/config"
	"github.com/nickdelicto/nursejobs-backend/facets"
	"github.com/nickdelicto/nursejobs-backend/models"
)

var aggregator *facets.Aggregator

// Init wires the aggregator the handlers use. Called once at startup.
func Init(a *facets.Aggregator) {
	aggregator = a
}

// GetBrowseStats godoc
// @Summary Get facet counts for the browse page
// @Description For the active filter set, returns per-dimension bucket counts under "all filters except this one" semantics, with raw classifier values folded into canonical buckets.
// @Tags Browse
// @Produce json
// @Param state query string false "2-letter state code (case-insensitive)"
// @Param specialty query string false "Specialty (canonical or raw alias)"
// @Param jobType query string false "Job type (canonical or raw alias)"
// @Param experienceLevel query string false "Experience level (canonical or raw alias)"
// @Param shiftType query string false "Shift type (canonical or raw alias)"
// @Param employerSlug query string false "Employer slug (exact match)"
// @Param search query string false "Free-text search (title or specialty substring)"
// @Success 200 {object} models.ApiResponse{data=models.BrowseStats} "Browse stats fetched successfully"
// @Failure 500 {object} models.ApiResponse "Listing store unavailable"
// @Router /browse/stats [get]
func GetBrowseStats(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	filterSet := models.FilterSetFromQuery(c)

	stats, err := aggregator.Aggregate(ctx, filterSet)
	if err != nil {
		log.Printf("ERROR in Aggregate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch browse stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Browse stats fetched successfully", stats))
}
