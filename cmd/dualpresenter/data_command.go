package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"dualpresenter/internal/config"
	"dualpresenter/internal/deckio"
)

func newDataCommand(ctx *commandContext) *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Data file utilities",
	}

	var overwrite bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write sample cards.csv and names.csv into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !overwrite {
				for _, path := range []string{cfg.CardsFile(), cfg.NamesFile()} {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("data file already exists at %s (use --overwrite to replace it)", path)
					} else if !errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("check data path: %w", err)
					}
				}
			}
			if err := os.MkdirAll(cfg.Paths.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data directory: %w", err)
			}
			if err := deckio.WriteFiles(cfg.Paths.DataDir, config.CardsFileName, config.NamesFileName, deckio.Template()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample data to %s\n", cfg.Paths.DataDir)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing data files")
	dataCmd.AddCommand(initCmd)

	return dataCmd
}
