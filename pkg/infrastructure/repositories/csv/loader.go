// Package csv loads inventory records from CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
)

// Loader handles loading stock records from CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

var (
	stockHeader       = []string{"state", "category", "warehouse", "date_of_stock"}
	stockHeaderPriced = []string{"state", "category", "warehouse", "date_of_stock", "unit_price"}
)

// LoadStock loads inventory records from a CSV file. The header is either
// the four base columns or the five-column form with unit_price; rows keep
// file order.
func (l *Loader) LoadStock(filename string) ([]*entities.StockItem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("stock CSV must have header and at least one data row")
	}

	header := records[0]
	priced := false
	switch {
	case matchesHeader(header, stockHeader):
	case matchesHeader(header, stockHeaderPriced):
		priced = true
	default:
		return nil, fmt.Errorf("stock CSV header mismatch. Expected %v or %v, got %v",
			stockHeader, stockHeaderPriced, header)
	}

	var items []*entities.StockItem
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("stock CSV row %d: expected %d columns, got %d", i+2, len(header), len(record))
		}

		item, err := parseStockItem(record, priced)
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func matchesHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, column := range expected {
		if header[i] != column {
			return false
		}
	}
	return true
}

func parseStockItem(record []string, priced bool) (*entities.StockItem, error) {
	item, err := entities.NewStockItem(record[0], record[1], entities.WarehouseKey(record[2]), record[3])
	if err != nil {
		return nil, err
	}

	if priced && record[4] != "" {
		price, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid unit_price %q: %w", record[4], err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("unit_price cannot be negative, got %s", price)
		}
		item.UnitPrice = price
	}

	return item, nil
}
