package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseKey identifies the warehouse a stock item is held in. Keys are
// opaque: "1", "2", "north-annex" are all valid.
type WarehouseKey string

// DateOfStockLayout is the timestamp format stock records carry for the
// moment an item entered stock.
const DateOfStockLayout = "2006-01-02 15:04:05"

// StockItem is a single inventory record. Items are immutable for the
// lifetime of a query session; the engine only ever reads them.
type StockItem struct {
	State       string
	Category    string
	Warehouse   WarehouseKey
	DateOfStock string // DateOfStockLayout; parsed lazily so corrupt rows surface per record
	UnitPrice   decimal.Decimal
}

// NewStockItem creates a validated StockItem.
func NewStockItem(state, category string, warehouse WarehouseKey, dateOfStock string) (*StockItem, error) {
	if state == "" {
		return nil, fmt.Errorf("state cannot be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	if warehouse == "" {
		return nil, fmt.Errorf("warehouse cannot be empty")
	}
	if _, err := time.Parse(DateOfStockLayout, dateOfStock); err != nil {
		return nil, fmt.Errorf("date of stock %q: %w", dateOfStock, err)
	}

	return &StockItem{
		State:       state,
		Category:    category,
		Warehouse:   warehouse,
		DateOfStock: dateOfStock,
	}, nil
}

// DisplayName is the item's search identity: state and category joined by a
// single space, compared case-insensitively.
func (s *StockItem) DisplayName() string {
	return s.State + " " + s.Category
}

// MatchesName reports whether name equals the item's display name, ignoring
// case.
func (s *StockItem) MatchesName(name string) bool {
	return strings.EqualFold(s.DisplayName(), name)
}

// StockedAt parses the record's date of stock. A malformed timestamp is a
// data integrity fault and is reported as ErrCorruptRecord.
func (s *StockItem) StockedAt() (time.Time, error) {
	t, err := time.Parse(DateOfStockLayout, s.DateOfStock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q has unparseable date_of_stock %q",
			ErrCorruptRecord, s.DisplayName(), s.DateOfStock)
	}
	return t, nil
}

// AgeInDays returns the number of whole calendar days the item has been in
// stock as of now. The fraction of a day is truncated, never rounded up.
func (s *StockItem) AgeInDays(now time.Time) (int, error) {
	stockedAt, err := s.StockedAt()
	if err != nil {
		return 0, err
	}
	return int(now.Sub(stockedAt) / (24 * time.Hour)), nil
}

// Priced reports whether the item carries a unit price. Seed and CSV data may
// omit prices, in which case order valuation is skipped.
func (s *StockItem) Priced() bool {
	return !s.UnitPrice.IsZero()
}
