package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"dualpresenter/internal/config"
	"dualpresenter/internal/logging"
	"dualpresenter/internal/presentation"
	"dualpresenter/internal/previewcache"
	"dualpresenter/internal/session"
	"dualpresenter/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve the deck whenever the data files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.log(cmd.Context())
			if err != nil {
				return err
			}
			store, err := ctx.sessionStore(cmd.Context())
			if err != nil {
				return err
			}

			r := &reloader{cfg: cfg, store: store, logger: logger, out: cmd.OutOrStdout(), prune: prune}
			if err := r.reload(cmd.Context(), nil); err != nil {
				return err
			}

			w, err := watch.New(watch.Options{
				Dir:      cfg.Paths.DataDir,
				Files:    []string{config.CardsFileName, config.NamesFileName},
				Debounce: time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond,
				Logger:   logger,
				OnChange: r.reload,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", cfg.Paths.DataDir)
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", true, "Prune stale slide previews after each reload")
	return cmd
}

// reloader rebuilds the engine after data changes and brings the session
// and preview cache in line with the new deck.
type reloader struct {
	mu     sync.Mutex
	cfg    *config.Config
	store  *session.Store
	logger *slog.Logger
	out    io.Writer
	prune  bool
}

func (r *reloader) reload(ctx context.Context, changed []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	engine, err := buildEngine(r.cfg, r.logger)
	if err != nil {
		return err
	}
	state, err := r.store.Update(ctx, func(s *session.State) error {
		s.Normalize(len(engine.Cards()))
		return nil
	})
	if err != nil {
		return err
	}

	pruned := 0
	if r.prune {
		cache, err := previewcache.Open(ctx, r.cfg.Paths.PreviewDir, r.logger)
		if err != nil {
			return err
		}
		defer cache.Close()
		if pruned, err = cache.Prune(ctx, engine.Fingerprints()); err != nil {
			return err
		}
	}

	r.logger.Info("deck resolved",
		logging.Int("card_count", len(engine.Cards())),
		logging.Int("issue_count", len(engine.Issues())),
		logging.Int("pruned_previews", pruned),
		logging.String("changed", strings.Join(changed, ",")))
	writeReload(r.out, engine, state, changed, pruned)
	return nil
}

func writeReload(out io.Writer, engine *presentation.Engine, state session.State, changed []string, pruned int) {
	what := "initial load"
	if len(changed) > 0 {
		what = "reloaded " + strings.Join(changed, ", ")
	}
	fmt.Fprintf(out, "[%s] %s: %d card(s), %d issue(s), slide %d, %d stale preview(s) pruned\n",
		time.Now().Format("15:04:05"), what, len(engine.Cards()), len(engine.Issues()), state.CurrentSlide+1, pruned)
}
