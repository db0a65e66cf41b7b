package repositories

import "stockroom/pkg/domain/entities"

// InventoryRepository provides access to the immutable inventory record
// sequence. Implementations must return records in a stable insertion order;
// the engine never writes back through this interface.
type InventoryRepository interface {
	GetAllStock() ([]*entities.StockItem, error)
	LoadStock(items []*entities.StockItem) error
}

// PersonnelRepository provides access to the authorized-personnel forest.
type PersonnelRepository interface {
	GetPersonnel() ([]*entities.PersonnelMember, error)
	LoadPersonnel(members []*entities.PersonnelMember) error
}
