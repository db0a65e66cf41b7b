package query

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
)

// SearchResult is the cross-warehouse aggregation for one searched item
// name. Ages are whole days in stock, recorded in the order matches were
// encountered; a warehouse with no matches still appears with a count of
// zero. Value totals the unit prices of all matches (unpriced items
// contribute nothing).
type SearchResult struct {
	Query       string
	Total       int
	PerLocation map[entities.WarehouseKey]int
	Ages        map[entities.WarehouseKey][]int
	Value       decimal.Decimal
	Warehouses  []entities.WarehouseKey
}

// InStock reports whether any warehouse holds the searched item. A false
// result is terminal: there is nothing to order.
func (r *SearchResult) InStock() bool {
	return r.Total > 0
}

// Searcher scans a warehouse index for items matching a display name.
type Searcher struct {
	now func() time.Time
}

// NewSearcher creates a searcher that computes stocking ages against the
// given clock. A nil clock uses time.Now.
func NewSearcher(now func() time.Time) *Searcher {
	if now == nil {
		now = time.Now
	}
	return &Searcher{now: now}
}

// Search scans every warehouse for items whose display name equals query,
// case-insensitively. It fails on the first record whose date of stock does
// not parse; corrupt records are a data fault, not a zero-age match.
func (s *Searcher) Search(query string, ix *WarehouseIndex) (*SearchResult, error) {
	result := &SearchResult{
		Query:       query,
		PerLocation: make(map[entities.WarehouseKey]int),
		Ages:        make(map[entities.WarehouseKey][]int),
		Value:       decimal.Zero,
		Warehouses:  ix.Warehouses(),
	}

	now := s.now()

	for _, key := range result.Warehouses {
		result.PerLocation[key] = 0
		for _, item := range ix.Items(key) {
			if !item.MatchesName(query) {
				continue
			}

			age, err := item.AgeInDays(now)
			if err != nil {
				return nil, fmt.Errorf("warehouse %s: %w", key, err)
			}

			result.PerLocation[key]++
			result.Total++
			result.Ages[key] = append(result.Ages[key], age)
			result.Value = result.Value.Add(item.UnitPrice)
		}
	}

	return result, nil
}
