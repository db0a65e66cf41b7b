package memory

import (
	"testing"

	"stockroom/pkg/domain/entities"
	"stockroom/pkg/query"
)

func TestRecordStore_LoadAndGet(t *testing.T) {
	store := NewRecordStore()

	items := []*entities.StockItem{
		{State: "Blue", Category: "Keyboard", Warehouse: "1", DateOfStock: "2021-07-26 10:40:00"},
		{State: "Red", Category: "Mouse", Warehouse: "2", DateOfStock: "2021-03-13 12:02:00"},
	}
	if err := store.LoadStock(items); err != nil {
		t.Fatalf("LoadStock failed: %v", err)
	}

	stock, err := store.GetAllStock()
	if err != nil {
		t.Fatalf("GetAllStock failed: %v", err)
	}
	if len(stock) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(stock))
	}
	if stock[0].DisplayName() != "Blue Keyboard" {
		t.Errorf("Expected load order preserved, got %q first", stock[0].DisplayName())
	}
}

func TestRecordStore_GetAllStockReturnsCopy(t *testing.T) {
	store := NewRecordStore()
	_ = store.LoadStock([]*entities.StockItem{
		{State: "Blue", Category: "Keyboard", Warehouse: "1", DateOfStock: "2021-07-26 10:40:00"},
	})

	stock, _ := store.GetAllStock()
	stock[0] = nil

	again, _ := store.GetAllStock()
	if again[0] == nil {
		t.Error("Expected GetAllStock to return a copy of the record slice")
	}
}

func TestSeededRecordStore(t *testing.T) {
	store := NewSeededRecordStore()

	stock, err := store.GetAllStock()
	if err != nil {
		t.Fatalf("GetAllStock failed: %v", err)
	}
	if len(stock) == 0 {
		t.Fatal("Expected seed stock records")
	}

	// Every seed record carries a parseable date and a price.
	for _, item := range stock {
		if _, err := item.StockedAt(); err != nil {
			t.Errorf("Seed record %q: %v", item.DisplayName(), err)
		}
		if !item.Priced() {
			t.Errorf("Seed record %q has no unit price", item.DisplayName())
		}
	}

	personnel, err := store.GetPersonnel()
	if err != nil {
		t.Fatalf("GetPersonnel failed: %v", err)
	}
	if len(personnel) == 0 {
		t.Fatal("Expected seed personnel forest")
	}

	// The seed forest authorizes a nested member.
	authorizer := query.NewAuthorizer(0)
	if !authorizer.Authorize(personnel, "ignacio", "alpaca2") {
		t.Error("Expected nested seed member to authorize")
	}
	if authorizer.Authorize(personnel, "ignacio", "wrong") {
		t.Error("Expected wrong password to fail")
	}
}
