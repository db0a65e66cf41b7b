// Package memory provides the in-memory record store backing the stock
// query engine. The store is loaded once and treated as immutable by every
// query operation.
package memory

import (
	"stockroom/pkg/domain/entities"
	"stockroom/pkg/domain/repositories"
)

// RecordStore holds the inventory record sequence and the personnel forest
// in memory, preserving load order.
type RecordStore struct {
	stock     []*entities.StockItem
	personnel []*entities.PersonnelMember
}

// NewRecordStore creates an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Verify interface compliance
var (
	_ repositories.InventoryRepository = (*RecordStore)(nil)
	_ repositories.PersonnelRepository = (*RecordStore)(nil)
)

// LoadStock appends inventory records to the store, preserving order.
func (s *RecordStore) LoadStock(items []*entities.StockItem) error {
	s.stock = append(s.stock, items...)
	return nil
}

// GetAllStock returns the inventory records in load order. The slice is a
// copy; the records themselves are shared and must not be mutated.
func (s *RecordStore) GetAllStock() ([]*entities.StockItem, error) {
	stock := make([]*entities.StockItem, len(s.stock))
	copy(stock, s.stock)
	return stock, nil
}

// LoadPersonnel appends personnel roots to the store.
func (s *RecordStore) LoadPersonnel(members []*entities.PersonnelMember) error {
	s.personnel = append(s.personnel, members...)
	return nil
}

// GetPersonnel returns the personnel forest roots in load order.
func (s *RecordStore) GetPersonnel() ([]*entities.PersonnelMember, error) {
	personnel := make([]*entities.PersonnelMember, len(s.personnel))
	copy(personnel, s.personnel)
	return personnel, nil
}
