package query

import (
	"strings"

	"stockroom/pkg/domain/entities"
)

// BrowseResult is the per-warehouse view of one selected category. Items are
// bucketed by display name; matching is substring containment on the
// category field, so browsing "Shoes" includes "Running Shoes".
type BrowseResult struct {
	Category         string
	PerLocation      map[entities.WarehouseKey]map[string]int
	PerLocationTotal map[entities.WarehouseKey]int
	GrandTotal       int
	Warehouses       []entities.WarehouseKey
}

// Found reports whether the selected code resolved to a category at all.
func (r *BrowseResult) Found() bool {
	return r.Category != ""
}

// Browse resolves code against the category index and aggregates every
// warehouse's items whose category contains the selected category name. A
// code not present in the index yields an empty result with a grand total of
// zero; reprompting on bad input is the interaction layer's job.
func Browse(code int, ci *CategoryIndex, ix *WarehouseIndex) *BrowseResult {
	result := &BrowseResult{
		PerLocation:      make(map[entities.WarehouseKey]map[string]int),
		PerLocationTotal: make(map[entities.WarehouseKey]int),
	}

	entry, ok := ci.Resolve(code)
	if !ok {
		return result
	}
	result.Category = entry.Category
	result.Warehouses = ix.Warehouses()

	for _, key := range result.Warehouses {
		buckets := make(map[string]int)
		for _, item := range ix.Items(key) {
			if !strings.Contains(item.Category, entry.Category) {
				continue
			}
			buckets[item.DisplayName()]++
			result.PerLocationTotal[key]++
			result.GrandTotal++
		}
		result.PerLocation[key] = buckets
	}

	return result
}
