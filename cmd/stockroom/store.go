package main

import (
	"fmt"

	"stockroom/pkg/config"
	"stockroom/pkg/infrastructure/repositories/csv"
	"stockroom/pkg/infrastructure/repositories/memory"
	"stockroom/pkg/infrastructure/repositories/yamlrepo"
)

// openRecordStore builds the record store from the configured data files,
// falling back to the built-in seed data when none are configured.
func openRecordStore(cfg config.Config) (*memory.RecordStore, error) {
	if cfg.InventoryFile == "" && cfg.PersonnelFile == "" {
		return memory.NewSeededRecordStore(), nil
	}

	store := memory.NewRecordStore()

	if cfg.InventoryFile != "" {
		items, err := csv.NewLoader().LoadStock(cfg.InventoryFile)
		if err != nil {
			return nil, err
		}
		if err := store.LoadStock(items); err != nil {
			return nil, fmt.Errorf("failed to load stock records: %w", err)
		}
	} else {
		if err := store.LoadStock(memory.SeedStock()); err != nil {
			return nil, fmt.Errorf("failed to load seed stock: %w", err)
		}
	}

	if cfg.PersonnelFile != "" {
		forest, err := yamlrepo.LoadPersonnel(cfg.PersonnelFile)
		if err != nil {
			return nil, err
		}
		if err := store.LoadPersonnel(forest); err != nil {
			return nil, fmt.Errorf("failed to load personnel records: %w", err)
		}
	} else {
		if err := store.LoadPersonnel(memory.SeedPersonnel()); err != nil {
			return nil, fmt.Errorf("failed to load seed personnel: %w", err)
		}
	}

	return store, nil
}
