package query

import (
	"stockroom/pkg/domain/entities"
)

// DefaultItemsPerPage is the page size used when the caller supplies none.
const DefaultItemsPerPage = 50

// PageDecision is the continuation choice solicited after every non-final
// page of a warehouse.
type PageDecision int

const (
	// PageContinue advances to the warehouse's next page.
	PageContinue PageDecision = iota
	// PageSkipWarehouse abandons the remaining pages of the current
	// warehouse and moves on to the next one.
	PageSkipWarehouse
)

// Page is one contiguous slice of a warehouse's item list.
type Page struct {
	Warehouse entities.WarehouseKey
	Number    int // zero-based page number within the warehouse
	Start     int // index of the first item on the page
	End       int // index one past the last item on the page
	Items     []*entities.StockItem
	// FirstOrdinal is the running display counter for the first item on the
	// page; the counter restarts per warehouse unless a shared counter is
	// supplied to the pager walk.
	FirstOrdinal int
	Total        int // total items in this warehouse
	Last         bool
}

// PageDecider receives every emitted page. Its decision is consulted only
// after non-final pages; for a warehouse's last page the return value is
// ignored.
type PageDecider func(Page) PageDecision

// ListResult reports the full per-warehouse item counts after a listing
// walk. The counts come from the whole index, so a warehouse skipped halfway
// still reports its full total.
type ListResult struct {
	Warehouses []entities.WarehouseKey
	Totals     map[entities.WarehouseKey]int
}

// Pager walks warehouse item lists in fixed-size pages.
type Pager struct {
	pageSize int
}

// NewPager creates a pager. Non-positive sizes fall back to
// DefaultItemsPerPage.
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultItemsPerPage
	}
	return &Pager{pageSize: pageSize}
}

// Pages splits items into its page slices. Concatenating the result
// reproduces items exactly; an empty input yields no pages.
func (p *Pager) Pages(items []*entities.StockItem) [][]*entities.StockItem {
	var pages [][]*entities.StockItem
	for start := 0; start < len(items); start += p.pageSize {
		end := start + p.pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

// ListWarehouse emits one warehouse's pages through decide, honoring skip
// decisions after non-final pages. counter, when non-nil, is the shared
// running display counter and is advanced per item emitted; when nil the
// ordinal restarts at zero for this warehouse. Warehouses with no items emit
// nothing.
func (p *Pager) ListWarehouse(key entities.WarehouseKey, items []*entities.StockItem, counter *int, decide PageDecider) {
	if len(items) == 0 {
		return
	}

	local := 0
	if counter == nil {
		counter = &local
	}

	pages := p.Pages(items)
	for number, pageItems := range pages {
		start := number * p.pageSize
		page := Page{
			Warehouse:    key,
			Number:       number,
			Start:        start,
			End:          start + len(pageItems),
			Items:        pageItems,
			FirstOrdinal: *counter,
			Total:        len(items),
			Last:         number == len(pages)-1,
		}
		*counter += len(pageItems)

		decision := decide(page)
		if page.Last {
			break
		}
		if decision == PageSkipWarehouse {
			break
		}
	}
}

// ListAll walks every warehouse of the index in first-seen order, then
// reports the full per-warehouse totals. counter may be nil for per-warehouse
// numbering or point at a shared running counter.
func (p *Pager) ListAll(ix *WarehouseIndex, counter *int, decide PageDecider) ListResult {
	for _, key := range ix.Warehouses() {
		p.ListWarehouse(key, ix.Items(key), counter, decide)
	}

	return ListResult{
		Warehouses: ix.Warehouses(),
		Totals:     ix.CountPerWarehouse(),
	}
}
