package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/kittyconf/internal/tui"
)

func (a *App) newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the session in an interactive form",
		Long: `Open a full-screen editor listing every setting by category.

  up/down, j/k   move          enter   edit or toggle
  left/right     cycle options r       reset setting
  /              filter        R       reset everything
  s              copy share link
  q              quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.IsTerminal(a.Out) {
				return &ExitError{Code: ExitUsage, Err: errors.New("edit needs an interactive terminal")}
			}

			screen, err := a.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			ed := tui.New(screen, a.session,
				tui.WithLogger(a.logger),
				tui.WithClipboard(a.Clipboard),
				tui.WithMaxURLLength(a.config.MaxURLLength),
			)
			if err := ed.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
