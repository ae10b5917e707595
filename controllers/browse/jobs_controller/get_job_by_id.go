package jobs_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nickdelicto/nursejobs-backend/config"
	"github.com/nickdelicto/nursejobs-backend/models"
)

// GetJobByID godoc
// @Summary Get a single active job listing
// @Description Retrieve one active listing by id with its employer resolved.
// @Tags Browse - Jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Job} "Job fetched successfully"
// @Failure 404 {object} models.ApiResponse "Job not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /browse/jobs/{id} [get]
func GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Job not found"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var job models.Job
	err = config.JobsGorm.
		WithContext(ctx).
		Preload("Employer").
		Where("id = ? AND is_active = TRUE", id).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Job not found"))
			return
		}
		log.Printf("ERROR fetching job %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch job"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Job fetched successfully", job))
}
