package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"dualpresenter/internal/pagination"
	"dualpresenter/internal/presentation"
	"dualpresenter/internal/roster"
	"dualpresenter/internal/session"
)

var screens = []pagination.Screen{pagination.ScreenMain, pagination.ScreenSide}

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Drive the live presentation",
	}

	sessionCmd.AddCommand(newSessionStepCommand(ctx, "status", "Show what both screens display", nil))
	sessionCmd.AddCommand(newSessionStepCommand(ctx, "next", "Advance to the next slide", func(s *session.State, deckLen int) {
		s.NextSlide(deckLen)
	}))
	sessionCmd.AddCommand(newSessionStepCommand(ctx, "prev", "Go back to the previous slide", func(s *session.State, _ int) {
		s.PrevSlide()
	}))
	sessionCmd.AddCommand(newSessionStepCommand(ctx, "freeze", "Toggle freezing the screens on the current slide", func(s *session.State, _ int) {
		s.ToggleFreeze()
	}))
	sessionCmd.AddCommand(newSessionStepCommand(ctx, "blackout", "Toggle blanking both screens", func(s *session.State, _ int) {
		s.ToggleBlackOut()
	}))
	sessionCmd.AddCommand(newSessionStepCommand(ctx, "reset", "Return to the first slide and clear page positions", func(s *session.State, _ int) {
		*s = session.State{SessionID: s.SessionID}
	}))
	sessionCmd.AddCommand(newSessionGotoCommand(ctx))
	sessionCmd.AddCommand(newSessionPageCommand(ctx))

	return sessionCmd
}

// newSessionStepCommand builds a subcommand that applies step to the session
// and prints both screens.
func newSessionStepCommand(ctx *commandContext, use, short string, step func(*session.State, int)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, ctx, func(s *session.State, engine *presentation.Engine, tracker *pagination.Tracker) error {
				if step != nil {
					step(s, len(engine.Cards()))
				}
				return nil
			})
		},
	}
}

func newSessionGotoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <card-id>",
		Short: "Jump to a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}
			return runSession(cmd, ctx, func(s *session.State, engine *presentation.Engine, _ *pagination.Tracker) error {
				cards := engine.Cards()
				index := roster.IndexOf(cards, cardID)
				if index < 0 {
					return fmt.Errorf("%w: %d", presentation.ErrCardNotFound, cardID)
				}
				s.GotoSlide(index, len(cards))
				return nil
			})
		},
	}
}

func newSessionPageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "page <main|side> <next|prev>",
		Short: "Turn the names page on one screen",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := pagination.ParseScreen(args[0])
			if err != nil {
				return err
			}
			var delta int
			switch args[1] {
			case "next":
				delta = 1
			case "prev":
				delta = -1
			default:
				return fmt.Errorf("unknown page direction %q (want next or prev)", args[1])
			}
			return runSession(cmd, ctx, func(s *session.State, engine *presentation.Engine, tracker *pagination.Tracker) error {
				engine.TurnPage(screen, s.Displayed(), delta, tracker)
				return nil
			})
		},
	}
}

// runSession applies mutate to the locked session state and prints the
// resulting screens.
func runSession(cmd *cobra.Command, ctx *commandContext, mutate func(*session.State, *presentation.Engine, *pagination.Tracker) error) error {
	engine, err := ctx.loadEngine(cmd.Context())
	if err != nil {
		return err
	}
	store, err := ctx.sessionStore(cmd.Context())
	if err != nil {
		return err
	}
	var views []screenResult
	state, err := store.Update(cmd.Context(), func(s *session.State) error {
		s.Normalize(len(engine.Cards()))
		tracker := s.Tracker()
		if err := mutate(s, engine, tracker); err != nil {
			return err
		}
		views = resolveScreens(engine, *s, tracker)
		s.SetTracker(tracker)
		return nil
	})
	if err != nil {
		return err
	}
	writeSession(cmd.OutOrStdout(), engine, state, views)
	return nil
}

type screenResult struct {
	screen pagination.Screen
	view   presentation.ScreenView
	ok     bool
}

// resolveScreens returns what each screen shows for state. During a blackout
// every screen is blank and no pagination entry is touched.
func resolveScreens(engine *presentation.Engine, state session.State, tracker *pagination.Tracker) []screenResult {
	results := make([]screenResult, 0, len(screens))
	for _, screen := range screens {
		if state.BlackOut {
			results = append(results, screenResult{screen: screen})
			continue
		}
		view, ok := engine.View(screen, state.Displayed(), tracker)
		results = append(results, screenResult{screen: screen, view: view, ok: ok})
	}
	return results
}

func writeSession(out io.Writer, engine *presentation.Engine, state session.State, views []screenResult) {
	cards := engine.Cards()
	if len(cards) == 0 {
		fmt.Fprintln(out, "Deck is empty")
		return
	}
	current := cards[state.CurrentSlide]
	fmt.Fprintf(out, "Slide %d/%d: #%d %s\n", state.CurrentSlide+1, len(cards), current.ID, cardLabel(current))
	if state.Freeze {
		frozen := cards[state.FrozenSlide]
		fmt.Fprintf(out, "Frozen on #%d %s\n", frozen.ID, cardLabel(frozen))
	}
	if state.BlackOut {
		fmt.Fprintln(out, "Screens blacked out")
	}
	for _, result := range views {
		if !result.ok {
			writeNoView(out, string(result.screen))
			continue
		}
		writeView(out, result.view)
	}
}

// sessionSnapshot loads the session without locking, for read-only views.
func sessionSnapshot(ctx context.Context, c *commandContext) (session.State, error) {
	store, err := c.sessionStore(ctx)
	if err != nil {
		return session.State{}, err
	}
	return store.Load()
}
