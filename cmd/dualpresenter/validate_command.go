package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the deck for range and grouping problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			issues := engine.Issues()
			if len(issues) == 0 {
				fmt.Fprintf(out, "Deck valid (%d cards)\n", len(engine.Cards()))
				return nil
			}
			rows := make([][]string, 0, len(issues))
			for _, issue := range issues {
				other := ""
				if issue.OtherID != 0 {
					other = strconv.Itoa(issue.OtherID)
				}
				rows = append(rows, []string{strconv.Itoa(issue.CardID), other, string(issue.Kind), issue.Message})
			}
			headers := []string{"Card", "Other", "Issue", "Detail"}
			fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignRight, alignRight}))
			if strict {
				return fmt.Errorf("deck has %d issue(s)", len(issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when issues are found")
	return cmd
}
