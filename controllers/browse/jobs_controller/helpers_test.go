package jobs_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBuildJobsOrderClause(t *testing.T) {
	assert.Equal(t, "j.created_at DESC, j.id ASC", buildJobsOrderClause("newest", "desc"))
	assert.Equal(t, "j.created_at ASC, j.id ASC", buildJobsOrderClause("newest", "asc"))
	assert.Equal(t, "j.title ASC, j.id ASC", buildJobsOrderClause("title", "ASC"))
	// unknown sort fields fall back to a deterministic default
	assert.Equal(t, "j.created_at DESC, j.id ASC", buildJobsOrderClause("salary", "desc"))
}

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	page, limit := parsePagination(testContext("/browse/jobs"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = parsePagination(testContext("/browse/jobs?page=3&limit=50"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	page, limit = parsePagination(testContext("/browse/jobs?page=0&limit=500"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}
