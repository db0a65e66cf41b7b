package query

import (
	"sort"

	"stockroom/pkg/domain/entities"
)

// DefaultCategoryCodeStart is the first code handed out when assigning
// category codes.
const DefaultCategoryCodeStart = 1

// CategoryEntry pairs a category name with its stocked item count.
type CategoryEntry struct {
	Category string
	Count    int
}

// CategoryIndex assigns a sequential integer code to every stocked category.
// Codes are menu selectors valid for one browsing session only: they start at
// a configurable offset, increment by one with no gaps, and are assigned in
// first-seen order over the record sequence so two builds over the same
// records bind the same codes.
type CategoryIndex struct {
	counts map[string]int
	codes  map[int]CategoryEntry
	start  int
}

// CountByCategory counts records per category. Along with the count map it
// returns the categories in first-seen order; callers that need reproducible
// numbering must use that order rather than map iteration.
func CountByCategory(records []*entities.StockItem) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string

	for _, record := range records {
		if _, seen := counts[record.Category]; !seen {
			order = append(order, record.Category)
		}
		counts[record.Category]++
	}

	return counts, order
}

// AssignCodes binds a sequential code to every category, walking categories
// in the given order and starting at start.
func AssignCodes(counts map[string]int, order []string, start int) *CategoryIndex {
	ci := &CategoryIndex{
		counts: counts,
		codes:  make(map[int]CategoryEntry, len(order)),
		start:  start,
	}

	code := start
	for _, category := range order {
		ci.codes[code] = CategoryEntry{Category: category, Count: counts[category]}
		code++
	}

	return ci
}

// BuildCategoryIndex counts categories and assigns codes in one step.
func BuildCategoryIndex(records []*entities.StockItem, start int) *CategoryIndex {
	counts, order := CountByCategory(records)
	return AssignCodes(counts, order, start)
}

// Resolve looks up the entry bound to a code. The second return value is
// false for codes outside the assigned range.
func (ci *CategoryIndex) Resolve(code int) (CategoryEntry, bool) {
	entry, ok := ci.codes[code]
	return entry, ok
}

// Codes returns all assigned codes in ascending order.
func (ci *CategoryIndex) Codes() []int {
	codes := make([]int, 0, len(ci.codes))
	for code := range ci.codes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Len returns the number of distinct categories.
func (ci *CategoryIndex) Len() int {
	return len(ci.codes)
}

// CategoryCount returns the stocked count for a category name, zero when the
// category is unknown.
func (ci *CategoryIndex) CategoryCount(category string) int {
	return ci.counts[category]
}
