// models/filter_models.go
package models

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// FilterSet holds the active browse filters, one optional value per dimension.
// It is built once per request from query parameters and never mutated after.
type FilterSet struct {
	State           string `json:"state"`
	Specialty       string `json:"specialty"`
	JobType         string `json:"jobType"`
	ExperienceLevel string `json:"experienceLevel"`
	ShiftType       string `json:"shiftType"`
	EmployerSlug    string `json:"employerSlug"`
	Search          string `json:"search"`
}

// FilterSetFromQuery builds the per-request FilterSet from query parameters.
// All parameters are optional and combinable.
func FilterSetFromQuery(c *gin.Context) FilterSet {
	return FilterSet{
		State:           strings.TrimSpace(c.Query("state")),
		Specialty:       strings.TrimSpace(c.Query("specialty")),
		JobType:         strings.TrimSpace(c.Query("jobType")),
		ExperienceLevel: strings.TrimSpace(c.Query("experienceLevel")),
		ShiftType:       strings.TrimSpace(c.Query("shiftType")),
		EmployerSlug:    strings.TrimSpace(c.Query("employerSlug")),
		Search:          strings.TrimSpace(c.Query("search")),
	}
}

// StateFacet is one state bucket, ordered by count for the "top states" UI
type StateFacet struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Count    int    `json:"count"`
	Slug     string `json:"slug"`
}

// EmployerFacet is one employer bucket (top 20 by count)
type EmployerFacet struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// TaxonomyFacet is one canonical bucket for a taxonomy dimension.
// Count is additive across every raw value that folds into the bucket.
type TaxonomyFacet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// JobTypeFacet additionally exposes the raw aliases behind the bucket so the
// frontend can build IN predicates against unnormalized job_type rows. This is
// the one place the canonical/raw distinction intentionally leaks.
type JobTypeFacet struct {
	Name     string   `json:"name"`
	Count    int      `json:"count"`
	Slug     string   `json:"slug"`
	DBValues []string `json:"dbValues"`
}

// BrowseStats is the full facet response for one FilterSet
type BrowseStats struct {
	States           []StateFacet    `json:"states"`
	Employers        []EmployerFacet `json:"employers"`
	Specialties      []TaxonomyFacet `json:"specialties"`
	JobTypes         []JobTypeFacet  `json:"jobTypes"`
	ExperienceLevels []TaxonomyFacet `json:"experienceLevels"`
	ShiftTypes       []TaxonomyFacet `json:"shiftTypes"`
}
