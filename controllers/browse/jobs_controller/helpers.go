package jobs_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nickdelicto/nursejobs-backend/config"
	"github.com/nickdelicto/nursejobs-backend/facets"
	"github.com/nickdelicto/nursejobs-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildJobsOrderClause builds the ORDER BY clause shared by handlers.
// j.id is always the final tie-break so pagination is deterministic.
func buildJobsOrderClause(sortBy, sortOrder string) string {
	order := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		order = "ASC"
	}

	switch sortBy {
	case "title":
		return fmt.Sprintf("j.title %s, j.id ASC", order)
	case "newest":
		return fmt.Sprintf("j.created_at %s, j.id ASC", order)
	default:
		return "j.created_at DESC, j.id ASC"
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}

// ─────────────────────────────────────────────────────────────
// Database fetcher (THIN RESPONSE)
// ─────────────────────────────────────────────────────────────

func fetchJobsFromDB(
	c *gin.Context,
	p facets.Predicate,
	orderClause string,
	page int,
	limit int,
) ([]models.JobSummary, int, error) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	offset := (page - 1) * limit

	// Count query
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM jobs j
		WHERE %s
	`, p.Where)

	var totalCount int64
	if err := config.JobsGorm.
		WithContext(ctx).
		Raw(countQuery, p.Args...).
		Scan(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Data query (ONLY required fields)
	dataQuery := fmt.Sprintf(`
	SELECT
		j.id::text AS id,
		j.title,
		j.state,
		COALESCE(j.specialty, '') AS specialty,
		COALESCE(j.job_type, '') AS job_type,
		e.name AS employer_name,
		j.created_at
	FROM jobs j
	JOIN employers e ON e.id = j.employer_id
	WHERE %s
	ORDER BY %s
	LIMIT ? OFFSET ?
`, p.Where, orderClause)

	// copy, never append into the predicate's own args slice
	dataArgs := make([]interface{}, 0, len(p.Args)+2)
	dataArgs = append(dataArgs, p.Args...)
	dataArgs = append(dataArgs, limit, offset)

	jobs := make([]models.JobSummary, 0)

	if err := config.JobsGorm.
		WithContext(ctx).
		Raw(dataQuery, dataArgs...).
		Scan(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, int(totalCount), nil
}
