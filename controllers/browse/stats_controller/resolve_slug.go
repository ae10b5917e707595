package stats_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickdelicto/nursejobs-backend/models"
	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

// ResolvedSlug is the payload for a successful slug resolution
type ResolvedSlug struct {
	Dimension string `json:"dimension"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	StateCode string `json:"stateCode,omitempty"`
}

// URL path segments use kebab-case; query params use camelCase. Both resolve.
var dimensionParams = map[string]taxonomy.Dimension{
	"specialty":        taxonomy.DimSpecialty,
	"jobType":          taxonomy.DimJobType,
	"job-type":         taxonomy.DimJobType,
	"experienceLevel":  taxonomy.DimExperience,
	"experience-level": taxonomy.DimExperience,
	"shiftType":        taxonomy.DimShift,
	"shift-type":       taxonomy.DimShift,
	"state":            taxonomy.DimState,
}

// ResolveSlug godoc
// @Summary Resolve a URL slug back to its canonical value
// @Description Maps an inbound browse-path segment to the canonical display name for the dimension. 404 when the slug matches nothing, so the caller renders a not-found page instead of an empty result list.
// @Tags Browse
// @Produce json
// @Param dimension path string true "Facet dimension (specialty | job-type | experience-level | shift-type | state)"
// @Param slug path string true "URL slug"
// @Success 200 {object} models.ApiResponse{data=ResolvedSlug} "Slug resolved"
// @Failure 404 {object} models.ApiResponse "Unknown dimension or slug"
// @Router /browse/resolve/{dimension}/{slug} [get]
func ResolveSlug(c *gin.Context) {
	dimParam := c.Param("dimension")
	slug := c.Param("slug")

	dim, known := dimensionParams[dimParam]
	if !known {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown dimension"))
		return
	}

	if dim == taxonomy.DimState {
		code, name, found := taxonomy.StateBySlug(slug)
		if !found {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown slug"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Slug resolved", ResolvedSlug{
			Dimension: string(dim),
			Slug:      slug,
			Name:      name,
			StateCode: code,
		}))
		return
	}

	name, found := taxonomy.Resolve(dim, slug)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown slug"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Slug resolved", ResolvedSlug{
		Dimension: string(dim),
		Slug:      slug,
		Name:      name,
	}))
}
