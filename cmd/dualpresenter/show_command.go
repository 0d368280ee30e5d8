package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"dualpresenter/internal/pagination"
	"dualpresenter/internal/roster"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var page int
	var all bool

	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Print the names a card displays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			slide, err := engine.Slide(cardID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d %s\n", slide.Card.ID, cardLabel(slide.Card))
			if r := rangeLabel(slide.Card); r != "" {
				fmt.Fprintf(out, "Range: %s\n", r)
			}
			fmt.Fprintf(out, "Display: %s\n", slide.Card.Display)
			fmt.Fprintf(out, "Fingerprint: %s\n", slide.Fingerprint)
			if slide.Role == "" {
				return nil
			}
			fmt.Fprintf(out, "Names: %d in %d page(s)\n", len(slide.Names), slide.PageCount())
			if slide.PageCount() == 0 {
				return nil
			}

			if all {
				for i := range slide.Pages {
					writePage(out, slide.Pages, i)
				}
				return nil
			}
			index := pagination.Clamp(page-1, slide.PageCount())
			writePage(out, slide.Pages, index)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to print (1-based, clamped)")
	cmd.Flags().BoolVar(&all, "all", false, "Print every page")
	return cmd
}

func writePage(out io.Writer, pages [][]roster.Name, index int) {
	page, index := pagination.Page(pages, index)
	fmt.Fprintf(out, "-- page %d/%d --\n", index+1, len(pages))
	for _, name := range page {
		fmt.Fprintf(out, "  %s\n", name.Name)
	}
}
