package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
	"stockroom/pkg/query"
)

func TestRenderer_Page(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Page(query.Page{
		Items: []*entities.StockItem{
			{State: "Blue", Category: "Keyboard"},
			{State: "Red", Category: "Mouse"},
		},
		FirstOrdinal: 50,
	})

	out := buf.String()
	if !strings.Contains(out, "51. Blue Keyboard") {
		t.Errorf("Expected continued numbering from the ordinal, got:\n%s", out)
	}
	if !strings.Contains(out, "52. Red Mouse") {
		t.Errorf("Expected second item line, got:\n%s", out)
	}
}

func TestRenderer_PagePrompt(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	prompt := r.PagePrompt(query.Page{Warehouse: "2", Start: 50, End: 100, Total: 130})
	expected := `Displaying 51-100 of 130 products in warehouse 2. Press enter for next page or "q" for next warehouse: `
	if prompt != expected {
		t.Errorf("Expected prompt %q, got %q", expected, prompt)
	}
}

func TestRenderer_SearchMatches(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.SearchMatches(&query.SearchResult{
		Query:       "blue keyboard",
		Total:       2,
		Warehouses:  []entities.WarehouseKey{"1", "2"},
		PerLocation: map[entities.WarehouseKey]int{"1": 2, "2": 0},
		Ages:        map[entities.WarehouseKey][]int{"1": {3, 10}},
		Value:       decimal.RequireFromString("59.80"),
	})

	out := buf.String()
	for _, fragment := range []string{
		"- Blue keyboard (in stock for 3 days) in Warehouse 1",
		"- Blue keyboard (in stock for 10 days) in Warehouse 1",
		"Maximum availability: 2 in Warehouse 1",
		"Maximum availability: 0 in Warehouse 2",
		"Total available amount is: 2",
		"Total stock value: 59.80",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("Expected output to contain %q, got:\n%s", fragment, out)
		}
	}
}

func TestRenderer_OrderResolution(t *testing.T) {
	testCases := []struct {
		name       string
		resolution entities.OrderResolution
		expected   string
	}{
		{
			"placed order",
			entities.OrderResolution{ItemName: "blue keyboard", Outcome: entities.OrderPlaced, Quantity: 3},
			"3 blue keyboard have been ordered",
		},
		{
			"max order with value",
			entities.OrderResolution{
				ItemName: "blue keyboard", Outcome: entities.OrderPlacedMax,
				Quantity: 10, Value: decimal.RequireFromString("299"),
			},
			"Order value: 299.00",
		},
		{
			"nothing ordered",
			entities.OrderResolution{Outcome: entities.OrderDeclined, Reason: query.ReasonNothingOrdered},
			"Nothing has been ordered",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewRenderer(&buf).OrderResolution(tc.resolution)
			if !strings.Contains(buf.String(), tc.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tc.expected, buf.String())
			}
		})
	}
}

func TestRenderer_BrowseWarehouse(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.BrowseWarehouse(&query.BrowseResult{
		Category:   "Shoes",
		Warehouses: []entities.WarehouseKey{"1"},
		PerLocation: map[entities.WarehouseKey]map[string]int{
			"1": {"Worn Running Shoes": 2, "New Shoes": 1},
		},
		PerLocationTotal: map[entities.WarehouseKey]int{"1": 3},
	}, "1")

	out := buf.String()
	if strings.Count(out, "Worn Running Shoes, Warehouse 1") != 2 {
		t.Errorf("Expected the bucket to repeat per counted item, got:\n%s", out)
	}
	if !strings.Contains(out, "- Total 3 amount of Shoes in warehouse 1") {
		t.Errorf("Expected warehouse total line, got:\n%s", out)
	}
	// Buckets print in sorted display-name order.
	if strings.Index(out, "New Shoes") > strings.Index(out, "Worn Running Shoes") {
		t.Errorf("Expected deterministic bucket order, got:\n%s", out)
	}
}

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"blue keyboard", "Blue keyboard"},
		{"", ""},
		{"X", "X"},
	}
	for _, tc := range testCases {
		if got := capitalize(tc.in); got != tc.out {
			t.Errorf("capitalize(%q) = %q, expected %q", tc.in, got, tc.out)
		}
	}
}
