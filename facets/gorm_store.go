package facets

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

// GormStore runs the grouped-count queries against the Postgres jobs table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GroupCounts(ctx context.Context, dim taxonomy.Dimension, p Predicate) ([]RawCount, error) {
	column, ok := columnFor[dim]
	if !ok {
		return nil, fmt.Errorf("ungroupable dimension %q", dim)
	}

	// Null/blank values contribute to no bucket for the dimension
	query := fmt.Sprintf(`
		SELECT %s AS raw_value, COUNT(*)::int AS count
		FROM jobs j
		WHERE %s
		  AND %s IS NOT NULL
		  AND btrim(%s::text) <> ''
		GROUP BY raw_value
	`, column, p.Where, column, column)

	rows := make([]RawCount, 0)
	if err := s.db.
		WithContext(ctx).
		Raw(query, p.Args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *GormStore) EmployerRefs(ctx context.Context, ids []string) (map[string]EmployerRef, error) {
	if len(ids) == 0 {
		return map[string]EmployerRef{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id::text AS id, name, slug
		FROM employers
		WHERE id::text IN (%s)
	`, strings.Join(placeholders, ","))

	var rows []struct {
		ID   string `gorm:"column:id"`
		Name string `gorm:"column:name"`
		Slug string `gorm:"column:slug"`
	}
	if err := s.db.
		WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	refs := make(map[string]EmployerRef, len(rows))
	for _, r := range rows {
		refs[r.ID] = EmployerRef{Name: r.Name, Slug: r.Slug}
	}
	return refs, nil
}
