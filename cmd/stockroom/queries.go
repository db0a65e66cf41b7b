package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"stockroom/pkg/config"
	"stockroom/pkg/interfaces/cli/output"
	"stockroom/pkg/query"
)

// The one-shot subcommands run a single query without the interactive loop,
// for scripted use. They share the root --config flag.

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items grouped by warehouse",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, _, err := loadIndexes()
		if err != nil {
			return err
		}

		renderer := output.NewRenderer(os.Stdout)
		pager := query.NewPager(0)
		result := pager.ListAll(ix, nil, func(p query.Page) query.PageDecision {
			if p.Number == 0 {
				renderer.WarehouseHeading(p.Warehouse)
			}
			renderer.Page(p)
			return query.PageContinue
		})
		renderer.WarehouseTotals(result)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <item name>",
	Short: "Search an item across all warehouses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, _, err := loadIndexes()
		if err != nil {
			return err
		}

		result, err := query.NewSearcher(nil).Search(args[0], ix)
		if err != nil {
			return err
		}

		renderer := output.NewRenderer(os.Stdout)
		renderer.SearchMatches(result)
		if !result.InStock() {
			renderer.NotInStock()
		}
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse [category code]",
	Short: "Browse stock by category; without a code, print the category menu",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, ci, err := loadIndexes()
		if err != nil {
			return err
		}

		renderer := output.NewRenderer(os.Stdout)
		if len(args) == 0 {
			renderer.CategoryMenu(ci)
			return nil
		}

		code, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("category code must be an integer, got %q", args[0])
		}

		result := query.Browse(code, ci, ix)
		if !result.Found() {
			return fmt.Errorf("no category with code %d", code)
		}

		for _, key := range result.Warehouses {
			renderer.BrowseWarehouse(result, key)
		}
		renderer.BrowseGrandTotal(result)
		return nil
	},
}

func loadIndexes() (*query.WarehouseIndex, *query.CategoryIndex, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := openRecordStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	records, err := store.GetAllStock()
	if err != nil {
		return nil, nil, err
	}

	return query.BuildWarehouseIndex(records), query.BuildCategoryIndex(records, cfg.CategoryCodeStart), nil
}
