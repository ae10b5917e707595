package facets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nickdelicto/nursejobs-backend/models"
	"github.com/nickdelicto/nursejobs-backend/taxonomy"
)

// ErrStoreUnavailable wraps any store failure during aggregation. A faceted UI
// missing one dimension silently is worse than an explicit error, so one
// failed query fails the whole response.
var ErrStoreUnavailable = errors.New("listing store unavailable")

// Employer buckets are capped before display-name resolution to bound the
// secondary employers lookup.
const employerFacetCap = 20

// Aggregator computes the full facet set for one FilterSet. It holds no
// request state; every call is independent.
type Aggregator struct {
	store GroupCounter
}

func NewAggregator(store GroupCounter) *Aggregator {
	return &Aggregator{store: store}
}

// Aggregate issues one grouped-count query per dimension under that
// dimension's leave-one-out predicate, folds raw buckets into canonical ones,
// and returns the merged, sorted facet set. Queries run concurrently; any
// failure fails the whole aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, f models.FilterSet) (*models.BrowseStats, error) {
	stats := &models.BrowseStats{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	// 1. Specialty facet
	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := a.store.GroupCounts(ctx, taxonomy.DimSpecialty, Compose(f, taxonomy.DimSpecialty))
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.Specialties = foldTaxonomy(taxonomy.DimSpecialty, rows)
		}
	}()

	// 2. Job type facet (carries raw aliases for downstream IN predicates)
	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := a.store.GroupCounts(ctx, taxonomy.DimJobType, Compose(f, taxonomy.DimJobType))
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.JobTypes = foldJobTypes(rows)
		}
	}()

	// 3. Experience level facet
	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := a.store.GroupCounts(ctx, taxonomy.DimExperience, Compose(f, taxonomy.DimExperience))
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.ExperienceLevels = foldTaxonomy(taxonomy.DimExperience, rows)
		}
	}()

	// 4. Shift type facet
	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := a.store.GroupCounts(ctx, taxonomy.DimShift, Compose(f, taxonomy.DimShift))
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.ShiftTypes = foldTaxonomy(taxonomy.DimShift, rows)
		}
	}()

	// 5. State facet
	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := a.store.GroupCounts(ctx, taxonomy.DimState, Compose(f, taxonomy.DimState))
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.States = foldStates(rows)
		}
	}()

	// 6. Employer facet (no folding; employer names are canonical by FK)
	wg.Add(1)
	go func() {
		defer wg.Done()
		employers, err := a.employerFacet(ctx, f)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			stats.Employers = employers
		}
	}()

	wg.Wait()

	// No partial facet response: any failed query fails the aggregation
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, errs[0])
	}

	return stats, nil
}

// employerFacet groups by employer id under the employer-excluded predicate,
// caps to the top 20 by count, then resolves display names and slugs.
func (a *Aggregator) employerFacet(ctx context.Context, f models.FilterSet) ([]models.EmployerFacet, error) {
	rows, err := a.store.GroupCounts(ctx, taxonomy.DimEmployer, Compose(f, taxonomy.DimEmployer))
	if err != nil {
		return nil, err
	}

	// Deterministic pre-cap order: count desc, then id
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].RawValue < rows[j].RawValue
	})
	if len(rows) > employerFacetCap {
		rows = rows[:employerFacetCap]
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.RawValue
	}
	refs, err := a.store.EmployerRefs(ctx, ids)
	if err != nil {
		return nil, err
	}

	facetList := make([]models.EmployerFacet, 0, len(rows))
	for _, r := range rows {
		ref, found := refs[r.RawValue]
		if !found {
			// employer row gone mid-request; drop the orphan bucket
			continue
		}
		facetList = append(facetList, models.EmployerFacet{
			Name:  ref.Name,
			Slug:  ref.Slug,
			Count: r.Count,
		})
	}

	sort.Slice(facetList, func(i, j int) bool {
		if facetList[i].Count != facetList[j].Count {
			return facetList[i].Count > facetList[j].Count
		}
		return facetList[i].Name < facetList[j].Name
	})
	return facetList, nil
}

// foldTaxonomy accumulates raw buckets into canonical ones, summing counts
// across raw values that collapse together. Alphabetical output order.
func foldTaxonomy(dim taxonomy.Dimension, rows []RawCount) []models.TaxonomyFacet {
	type bucket struct {
		count int
		slug  string
	}
	byName := map[string]*bucket{}

	for _, r := range rows {
		canon, ok := taxonomy.Normalize(dim, r.RawValue)
		if !ok {
			continue
		}
		b, found := byName[canon.Display]
		if !found {
			b = &bucket{slug: canon.Slug}
			byName[canon.Display] = b
			taxonomy.Remember(dim, canon.Display)
		}
		b.count += r.Count
	}

	facetList := make([]models.TaxonomyFacet, 0, len(byName))
	for name, b := range byName {
		facetList = append(facetList, models.TaxonomyFacet{
			Name:  name,
			Count: b.count,
			Slug:  b.slug,
		})
	}
	sort.Slice(facetList, func(i, j int) bool {
		return facetList[i].Name < facetList[j].Name
	})
	return facetList
}

// foldJobTypes is foldTaxonomy plus the dbValues alias list per bucket: the
// static aliases for the canonical value unioned with the raw spellings
// actually seen in the store.
func foldJobTypes(rows []RawCount) []models.JobTypeFacet {
	type bucket struct {
		count    int
		slug     string
		dbValues map[string]bool
	}
	byName := map[string]*bucket{}

	for _, r := range rows {
		canon, ok := taxonomy.Normalize(taxonomy.DimJobType, r.RawValue)
		if !ok {
			continue
		}
		b, found := byName[canon.Display]
		if !found {
			b = &bucket{slug: canon.Slug, dbValues: map[string]bool{}}
			for _, alias := range taxonomy.Aliases(taxonomy.DimJobType, canon.Display) {
				b.dbValues[alias] = true
			}
			byName[canon.Display] = b
			taxonomy.Remember(taxonomy.DimJobType, canon.Display)
		}
		b.count += r.Count
		b.dbValues[strings.TrimSpace(r.RawValue)] = true
	}

	facetList := make([]models.JobTypeFacet, 0, len(byName))
	for name, b := range byName {
		values := make([]string, 0, len(b.dbValues))
		for v := range b.dbValues {
			values = append(values, v)
		}
		sort.Strings(values)
		facetList = append(facetList, models.JobTypeFacet{
			Name:     name,
			Count:    b.count,
			Slug:     b.slug,
			DBValues: values,
		})
	}
	sort.Slice(facetList, func(i, j int) bool {
		return facetList[i].Name < facetList[j].Name
	})
	return facetList
}

// foldStates merges code casing variants, resolves full names, and orders by
// count descending (the "top states" UI), name ascending on ties.
func foldStates(rows []RawCount) []models.StateFacet {
	byCode := map[string]int{}
	for _, r := range rows {
		code := strings.ToUpper(strings.TrimSpace(r.RawValue))
		if code == "" {
			continue
		}
		byCode[code] += r.Count
	}

	facetList := make([]models.StateFacet, 0, len(byCode))
	for code, count := range byCode {
		name, known := taxonomy.StateName(code)
		if !known {
			// degrade: show the code itself rather than dropping listings
			name = code
		}
		facetList = append(facetList, models.StateFacet{
			Code:     code,
			FullName: name,
			Count:    count,
			Slug:     taxonomy.Slugify(name),
		})
	}
	sort.Slice(facetList, func(i, j int) bool {
		if facetList[i].Count != facetList[j].Count {
			return facetList[i].Count > facetList[j].Count
		}
		return facetList[i].FullName < facetList[j].FullName
	})
	return facetList
}
