// Package query implements the stock query and order engine: warehouse
// indexing, category aggregation, paginated listing, cross-warehouse item
// search, category browsing, credential authorization and order validation.
// Every operation is a pure computation over an immutable record snapshot;
// nothing here mutates the record store.
package query

import (
	"stockroom/pkg/domain/entities"
)

// WarehouseIndex maps each warehouse key to the ordered sequence of stock
// items held there. It is built fresh per logical query operation and is
// cheap to rebuild; warehouse iteration follows first-seen order over the
// input records so repeated walks are deterministic.
type WarehouseIndex struct {
	buckets map[entities.WarehouseKey][]*entities.StockItem
	order   []entities.WarehouseKey
	total   int
}

// BuildWarehouseIndex groups records by their warehouse field. Every record
// lands in exactly one bucket and bucket order preserves input order; no
// filtering, no deduplication.
func BuildWarehouseIndex(records []*entities.StockItem) *WarehouseIndex {
	ix := &WarehouseIndex{
		buckets: make(map[entities.WarehouseKey][]*entities.StockItem),
	}

	for _, record := range records {
		key := record.Warehouse
		if _, seen := ix.buckets[key]; !seen {
			ix.order = append(ix.order, key)
		}
		ix.buckets[key] = append(ix.buckets[key], record)
		ix.total++
	}

	return ix
}

// Warehouses returns the warehouse keys in first-seen order.
func (ix *WarehouseIndex) Warehouses() []entities.WarehouseKey {
	keys := make([]entities.WarehouseKey, len(ix.order))
	copy(keys, ix.order)
	return keys
}

// Items returns the ordered items of one warehouse. The returned slice is
// shared with the index and must not be modified.
func (ix *WarehouseIndex) Items(key entities.WarehouseKey) []*entities.StockItem {
	return ix.buckets[key]
}

// Count returns the number of items held in one warehouse.
func (ix *WarehouseIndex) Count(key entities.WarehouseKey) int {
	return len(ix.buckets[key])
}

// Len returns the total number of indexed records across all warehouses.
func (ix *WarehouseIndex) Len() int {
	return ix.total
}

// CountPerWarehouse returns the full per-warehouse item counts, derived from
// the whole index independently of any pagination that may have been cut
// short.
func (ix *WarehouseIndex) CountPerWarehouse() map[entities.WarehouseKey]int {
	counts := make(map[entities.WarehouseKey]int, len(ix.order))
	for key, items := range ix.buckets {
		counts[key] = len(items)
	}
	return counts
}
