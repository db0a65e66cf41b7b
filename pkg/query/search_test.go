package query

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func searchFixture() *WarehouseIndex {
	return BuildWarehouseIndex([]*entities.StockItem{
		stockItem("Blue", "Keyboard", "A", "2024-03-07 12:00:00"), // 3 days
		stockItem("Red", "Mouse", "A", "2024-03-01 12:00:00"),
		stockItem("Blue", "Keyboard", "B", "2024-02-29 12:00:00"), // 10 days
		stockItem("Blue", "Keyboard", "B", "2024-03-09 12:00:00"), // 1 day
	})
}

func TestSearcher_Search_Symmetry(t *testing.T) {
	searcher := NewSearcher(fixedNow)

	result, err := searcher.Search("blue keyboard", searchFixture())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if result.Total != result.PerLocation["A"]+result.PerLocation["B"] {
		t.Errorf("Total %d does not equal per-location sum %d+%d",
			result.Total, result.PerLocation["A"], result.PerLocation["B"])
	}
	if result.Total != 3 {
		t.Errorf("Expected total 3, got %d", result.Total)
	}

	expectedPerLocation := map[entities.WarehouseKey]int{"A": 1, "B": 2}
	if diff := cmp.Diff(expectedPerLocation, result.PerLocation); diff != "" {
		t.Errorf("Per-location counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSearcher_Search_AgesInEncounterOrder(t *testing.T) {
	searcher := NewSearcher(fixedNow)

	result, err := searcher.Search("Blue Keyboard", searchFixture())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	expectedAges := map[entities.WarehouseKey][]int{
		"A": {3},
		"B": {10, 1}, // encounter order, not sorted
	}
	if diff := cmp.Diff(expectedAges, result.Ages); diff != "" {
		t.Errorf("Ages mismatch (-want +got):\n%s", diff)
	}
}

func TestSearcher_Search_UnknownItem(t *testing.T) {
	searcher := NewSearcher(fixedNow)

	result, err := searcher.Search("velvet sofa", searchFixture())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if result.Total != 0 {
		t.Errorf("Expected total 0 for unknown item, got %d", result.Total)
	}
	if result.InStock() {
		t.Error("Expected unknown item to report not in stock")
	}

	// Warehouses with zero matches still report a count of zero.
	for _, key := range result.Warehouses {
		count, present := result.PerLocation[key]
		if !present {
			t.Errorf("Expected warehouse %s to be present with a zero count", key)
		}
		if count != 0 {
			t.Errorf("Expected zero count in warehouse %s, got %d", key, count)
		}
	}
}

func TestSearcher_Search_CaseInsensitive(t *testing.T) {
	searcher := NewSearcher(fixedNow)

	for _, query := range []string{"blue keyboard", "BLUE KEYBOARD", "Blue Keyboard"} {
		result, err := searcher.Search(query, searchFixture())
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", query, err)
		}
		if result.Total != 3 {
			t.Errorf("Search(%q): expected total 3, got %d", query, result.Total)
		}
	}
}

func TestSearcher_Search_Value(t *testing.T) {
	priced := stockItem("Blue", "Keyboard", "A", "2024-03-07 12:00:00")
	priced.UnitPrice = decimal.RequireFromString("19.90")
	unpriced := stockItem("Blue", "Keyboard", "A", "2024-03-08 12:00:00")

	searcher := NewSearcher(fixedNow)
	result, err := searcher.Search("blue keyboard", BuildWarehouseIndex([]*entities.StockItem{priced, unpriced}))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if !result.Value.Equal(decimal.RequireFromString("19.90")) {
		t.Errorf("Expected matched stock value 19.90, got %s", result.Value)
	}
}

func TestSearcher_Search_CorruptRecord(t *testing.T) {
	ix := BuildWarehouseIndex([]*entities.StockItem{
		stockItem("Blue", "Keyboard", "A", "not a date"),
	})

	_, err := NewSearcher(fixedNow).Search("blue keyboard", ix)
	if err == nil {
		t.Fatal("Expected error for corrupt record")
	}
	if !errors.Is(err, entities.ErrCorruptRecord) {
		t.Errorf("Expected ErrCorruptRecord, got %v", err)
	}
}

func TestSearcher_Search_DefaultClock(t *testing.T) {
	// A nil clock falls back to time.Now; an item stocked in the past has a
	// non-negative age.
	result, err := NewSearcher(nil).Search("blue keyboard", searchFixture())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, ages := range result.Ages {
		for _, age := range ages {
			if age < 0 {
				t.Errorf("Expected non-negative age, got %d", age)
			}
		}
	}
}
