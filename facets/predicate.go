package facets

import (
	"fmt"
	"strings"

	"github.com/nickdelicto/nursejobs-backend/models"
	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

// Predicate is an immutable WHERE fragment plus its bind args. Composing a new
// predicate never mutates the FilterSet or any shared state.
type Predicate struct {
	Where string
	Args  []interface{}
}

// ExcludeNone composes a predicate with every active filter applied, for the
// jobs list endpoint where no dimension is being counted.
const ExcludeNone = taxonomy.Dimension("")

// columnFor whitelists the jobs columns a dimension may group or filter on.
var columnFor = map[taxonomy.Dimension]string{
	taxonomy.DimState:      "j.state",
	taxonomy.DimSpecialty:  "j.specialty",
	taxonomy.DimJobType:    "j.job_type",
	taxonomy.DimExperience: "j.experience_level",
	taxonomy.DimShift:      "j.shift_type",
	taxonomy.DimEmployer:   "j.employer_id::text",
}

// normExpr folds a raw column the same way taxonomy.Fold folds a Go string,
// so predicate matching and normalization cannot disagree.
func normExpr(column string) string {
	return fmt.Sprintf(`btrim(regexp_replace(lower(%s), '[-_\s]+', ' ', 'g'))`, column)
}

// Compose builds the leave-one-out predicate for one dimension: every
// non-empty filter is ANDed in except the excluded dimension's own filter.
// Search and employerSlug are not facet dimensions, so they always apply
// unless the employer facet itself is being counted.
func Compose(f models.FilterSet, exclude taxonomy.Dimension) Predicate {
	conditions := []string{"j.is_active = TRUE"}
	args := []interface{}{}

	if f.State != "" && exclude != taxonomy.DimState {
		if taxonomy.ValidStateCode(f.State) {
			// case-insensitive: the classifier emits mixed-case codes, and the
			// state facet folds casing variants into one bucket
			conditions = append(conditions, "upper(btrim(j.state)) = ?")
			args = append(args, strings.ToUpper(f.State))
		} else {
			// Unknown code: degrade to empty-but-valid results, not an error
			conditions = append(conditions, "FALSE")
		}
	}

	taxonomyFilters := []struct {
		dim   taxonomy.Dimension
		value string
	}{
		{taxonomy.DimSpecialty, f.Specialty},
		{taxonomy.DimJobType, f.JobType},
		{taxonomy.DimExperience, f.ExperienceLevel},
		{taxonomy.DimShift, f.ShiftType},
	}
	for _, tf := range taxonomyFilters {
		dim, value := tf.dim, tf.value
		if value == "" || exclude == dim {
			continue
		}
		keys := taxonomy.FilterAliasKeys(dim, value)
		if len(keys) == 0 {
			conditions = append(conditions, "FALSE")
			continue
		}
		placeholders := make([]string, len(keys))
		for i, key := range keys {
			placeholders[i] = "?"
			args = append(args, key)
		}
		cond := fmt.Sprintf(
			"%s IN (%s)",
			normExpr(columnFor[dim]),
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	if f.EmployerSlug != "" && exclude != taxonomy.DimEmployer {
		cond := `j.employer_id IN (
			SELECT id FROM employers WHERE slug = ?
		)`
		conditions = append(conditions, cond)
		args = append(args, f.EmployerSlug)
	}

	if f.Search != "" {
		conditions = append(conditions, "(j.title ILIKE ? OR j.specialty ILIKE ?)")
		args = append(args, "%"+f.Search+"%", "%"+f.Search+"%")
	}

	return Predicate{
		Where: strings.Join(conditions, " AND "),
		Args:  args,
	}
}
