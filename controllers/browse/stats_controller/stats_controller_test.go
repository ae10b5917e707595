package stats_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickdelicto/nursejobs-backend/facets"
	"github.com/nickdelicto/nursejobs-backend/models"
	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

type stubStore struct {
	counts map[taxonomy.Dimension][]facets.RawCount
	err    error
}

func (s *stubStore) GroupCounts(ctx context.Context, dim taxonomy.Dimension, p facets.Predicate) ([]facets.RawCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.counts[dim], nil
}

func (s *stubStore) EmployerRefs(ctx context.Context, ids []string) (map[string]facets.EmployerRef, error) {
	return map[string]facets.EmployerRef{}, nil
}

func newTestRouter(store facets.GroupCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(facets.NewAggregator(store))

	router := gin.New()
	browse := router.Group("/api/v1/browse")
	browse.GET("/stats", GetBrowseStats)
	browse.GET("/resolve/:dimension/:slug", ResolveSlug)
	return router
}

func TestGetBrowseStats(t *testing.T) {
	router := newTestRouter(&stubStore{
		counts: map[taxonomy.Dimension][]facets.RawCount{
			taxonomy.DimSpecialty: {
				{RawValue: "icu", Count: 2},
				{RawValue: "ICU", Count: 1},
			},
			taxonomy.DimJobType: {
				{RawValue: "PRN", Count: 3},
			},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/stats?state=OH", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string             `json:"message"`
		Data    models.BrowseStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Specialties, 1)
	assert.Equal(t, "ICU", resp.Data.Specialties[0].Name)
	assert.Equal(t, 3, resp.Data.Specialties[0].Count)

	require.Len(t, resp.Data.JobTypes, 1)
	assert.Equal(t, "Per Diem", resp.Data.JobTypes[0].Name)
	assert.Contains(t, resp.Data.JobTypes[0].DBValues, "PRN")
}

func TestGetBrowseStatsStoreFailure(t *testing.T) {
	router := newTestRouter(&stubStore{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/stats", nil)
	router.ServeHTTP(w, req)

	// fail-fast: no partial facet response
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

func TestResolveSlug(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/resolve/job-type/per-diem", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data ResolvedSlug `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Per Diem", resp.Data.Name)
}

func TestResolveSlugState(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/resolve/state/north-carolina", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data ResolvedSlug `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "North Carolina", resp.Data.Name)
	assert.Equal(t, "NC", resp.Data.StateCode)
}

func TestResolveSlugNotFound(t *testing.T) {
	router := newTestRouter(&stubStore{})

	for _, path := range []string{
		"/api/v1/browse/resolve/specialty/no-such-slug",
		"/api/v1/browse/resolve/flavor/vanilla",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
