package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dualpresenter/internal/collation"
	"dualpresenter/internal/deckio"
	"dualpresenter/internal/roster"
)

func newNamesCommand(ctx *commandContext) *cobra.Command {
	var search string
	var group string

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List roster names in collation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.log(cmd.Context())
			if err != nil {
				return err
			}
			data, err := deckio.Load(cfg.CardsFile(), cfg.NamesFile(), logger)
			if err != nil {
				return err
			}
			cmp, err := collation.ForLocale(cfg.Presentation.Locale)
			if err != nil {
				return err
			}

			group = strings.TrimSpace(group)
			var matched []roster.Name
			for _, name := range data.Names {
				if group != "" && name.Group != group {
					continue
				}
				if search != "" && !collation.MatchName(name.Name, search) {
					continue
				}
				matched = append(matched, name)
			}

			out := cmd.OutOrStdout()
			if len(matched) == 0 {
				fmt.Fprintln(out, "No matching names")
				return nil
			}
			rows := make([][]string, 0, len(matched))
			for _, name := range cmp.SortNames(matched) {
				rows = append(rows, []string{
					strconv.Itoa(name.ID),
					name.Name,
					name.Group,
					yesNo(name.Attending),
					name.Presenter,
				})
			}
			headers := []string{"ID", "Name", "Group", "Attending", "Presenter"}
			fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name, ignoring case and accents")
	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list names of this group")
	return cmd
}

func newUnattendedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unattended",
		Short: "List names marked as not attending",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, slide := range engine.Slides() {
				if slide.Card.Type != roster.CardUnattended {
					continue
				}
				fmt.Fprintf(out, "%d unattended name(s), %d per page\n", len(slide.Names), cfg.Presentation.PageSize)
				for _, name := range slide.Names {
					fmt.Fprintf(out, "  %s [%s]\n", name.Name, name.Group)
				}
				return nil
			}
			fmt.Fprintln(out, "Deck has no Unattended card")
			return nil
		},
	}
}
