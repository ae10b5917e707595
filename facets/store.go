package facets

import (
	"context"

	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

// RawCount is one grouped-count row as the store returns it, pre-normalization.
type RawCount struct {
	RawValue string `gorm:"column:raw_value"`
	Count    int    `gorm:"column:count"`
}

// EmployerRef is the display info resolved for an employer bucket.
type EmployerRef struct {
	Name string `gorm:"column:name"`
	Slug string `gorm:"column:slug"`
}

// GroupCounter is the grouped-count capability the aggregator consumes. It is
// the only store surface this engine needs; schema and transport stay with the
// implementation.
type GroupCounter interface {
	// GroupCounts returns {rawValue, count} pairs for one dimension under the
	// given predicate, skipping rows with a null or blank value.
	GroupCounts(ctx context.Context, dim taxonomy.Dimension, p Predicate) ([]RawCount, error)

	// EmployerRefs resolves employer ids (as text) to display name and slug.
	EmployerRefs(ctx context.Context, ids []string) (map[string]EmployerRef, error)
}
