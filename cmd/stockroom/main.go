// Command stockroom is the interactive stock query and order tool. Run with
// no arguments for the interactive shell, or use the one-shot subcommands
// for scripted queries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockroom/pkg/config"
	"stockroom/pkg/interfaces/cli/shell"
	"stockroom/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Interactive warehouse stock queries and ordering",
	Long: `stockroom lets an operator browse inventory by warehouse, search items
across warehouses with age-in-stock reporting, browse by category, and place
orders gated by personnel credentials.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		store, err := openRecordStore(cfg)
		if err != nil {
			return err
		}

		return shell.New(os.Stdin, os.Stdout, cfg, logger.Named(log, "shell"), store, store).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "stockroom.yaml", "path to the config file")
	rootCmd.AddCommand(listCmd, searchCmd, browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
