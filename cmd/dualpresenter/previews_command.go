package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dualpresenter/internal/previewcache"
)

func newPreviewsCommand(ctx *commandContext) *cobra.Command {
	previewsCmd := &cobra.Command{
		Use:   "previews",
		Short: "Manage cached slide preview images",
	}

	previewsCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show cached previews and whether the deck still uses them",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			current := engine.Fingerprints()
			return ctx.withPreviews(cmd.Context(), func(cache *previewcache.Cache) error {
				entries, err := cache.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Preview directory: %s\n", cache.Dir())
				if len(entries) == 0 {
					fmt.Fprintln(out, "No cached previews")
					return nil
				}
				var total int64
				stale := 0
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					_, inUse := current[entry.Hash]
					if !inUse {
						stale++
					}
					total += entry.Size
					rows = append(rows, []string{
						shortFingerprint(entry.Hash),
						humanize.IBytes(uint64(entry.Size)),
						humanize.Time(entry.CreatedAt),
						yesNo(inUse),
					})
				}
				headers := []string{"Fingerprint", "Size", "Created", "In use"}
				fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignLeft, alignRight}))
				fmt.Fprintf(out, "%d preview(s), %s, %d stale\n", len(entries), humanize.IBytes(uint64(total)), stale)
				return nil
			})
		},
	})

	previewsCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every cached preview image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPreviews(cmd.Context(), func(cache *previewcache.Cache) error {
				deleted, err := cache.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d preview(s)\n", deleted)
				return nil
			})
		},
	})

	previewsCmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete previews the current deck no longer produces",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			return ctx.withPreviews(cmd.Context(), func(cache *previewcache.Cache) error {
				deleted, err := cache.Prune(cmd.Context(), engine.Fingerprints())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d stale preview(s)\n", deleted)
				return nil
			})
		},
	})

	return previewsCmd
}
