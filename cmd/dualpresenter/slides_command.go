package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSlidesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slides",
		Short: "List the deck with resolved name counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			current := -1
			if state, err := sessionSnapshot(cmd.Context(), ctx); err == nil {
				state.Normalize(len(engine.Cards()))
				current = state.Displayed()
			}
			out := cmd.OutOrStdout()
			slides := engine.Slides()
			if len(slides) == 0 {
				fmt.Fprintln(out, "Deck is empty")
				return nil
			}
			fmt.Fprintln(out, renderTable(out, slideHeaders, slideRows(slides, current, cfg.Presentation.NamesPrecedence), slideAligns))
			return nil
		},
	}
}
