package memory

import (
	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
)

// NewSeededRecordStore returns a record store preloaded with the built-in
// sample dataset, so the tool is usable without any data files.
func NewSeededRecordStore() *RecordStore {
	store := NewRecordStore()
	_ = store.LoadStock(SeedStock())
	_ = store.LoadPersonnel(SeedPersonnel())
	return store
}

func seedItem(state, category string, warehouse entities.WarehouseKey, dateOfStock, price string) *entities.StockItem {
	return &entities.StockItem{
		State:       state,
		Category:    category,
		Warehouse:   warehouse,
		DateOfStock: dateOfStock,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

// SeedStock returns the built-in inventory records.
func SeedStock() []*entities.StockItem {
	return []*entities.StockItem{
		seedItem("Blue", "Keyboard", "1", "2021-07-26 10:40:00", "29.90"),
		seedItem("Red", "Mouse", "1", "2021-03-13 12:02:00", "14.50"),
		seedItem("Exceptional", "Monitor", "1", "2020-12-01 09:15:00", "229.00"),
		seedItem("Almost new", "Keyboard", "1", "2021-01-05 18:30:00", "19.90"),
		seedItem("Blue", "Headphones", "1", "2021-06-19 07:00:00", "49.00"),
		seedItem("New", "Running Shoes", "1", "2021-04-22 14:45:00", "89.90"),
		seedItem("New", "Shoes", "1", "2021-02-17 11:20:00", "59.90"),
		seedItem("Blue", "Keyboard", "2", "2021-05-30 16:10:00", "29.90"),
		seedItem("Blue", "Keyboard", "2", "2020-11-11 08:05:00", "27.90"),
		seedItem("Funny", "Mouse", "2", "2021-08-02 13:55:00", "12.00"),
		seedItem("Exceptional", "Headphones", "2", "2021-03-28 10:30:00", "54.00"),
		seedItem("Worn", "Running Shoes", "2", "2020-10-19 17:40:00", "39.90"),
		seedItem("Red", "Monitor", "2", "2021-07-07 09:50:00", "199.00"),
		seedItem("Almost new", "Mouse", "3", "2021-06-01 12:00:00", "11.50"),
		seedItem("New", "Monitor", "3", "2021-01-23 15:25:00", "249.00"),
		seedItem("Blue", "Shoes", "3", "2021-05-14 10:05:00", "64.90"),
		seedItem("Exceptional", "Keyboard", "3", "2020-09-09 09:09:00", "34.90"),
		seedItem("Red", "Headphones", "4", "2021-02-02 20:20:00", "44.00"),
		seedItem("New", "Keyboard", "4", "2021-08-15 07:35:00", "24.90"),
		seedItem("Worn", "Mouse", "4", "2020-12-24 23:59:00", "8.00"),
		seedItem("Blue", "Monitor", "4", "2021-04-04 04:04:00", "189.00"),
		seedItem("Funny", "Shoes", "4", "2021-03-03 13:30:00", "42.00"),
	}
}

// SeedPersonnel returns the built-in personnel forest: two department heads,
// each heading a small team, one of which nests a further level.
func SeedPersonnel() []*entities.PersonnelMember {
	return []*entities.PersonnelMember{
		{
			UserName: "jeremy",
			Password: "coppernickel",
			HeadOf: []*entities.PersonnelMember{
				{UserName: "salvador", Password: "selvashine"},
				{
					UserName: "miriam",
					Password: "alpaca",
					HeadOf: []*entities.PersonnelMember{
						{UserName: "ignacio", Password: "alpaca2"},
					},
				},
			},
		},
		{
			UserName: "noemi",
			Password: "sparrowhawk",
			HeadOf: []*entities.PersonnelMember{
				{UserName: "ruth", Password: "vineyard"},
			},
		},
	}
}
