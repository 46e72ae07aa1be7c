package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/kittyconf/internal/keymap"
)

func (a *App) newMapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Manage key mappings",
	}
	cmd.AddCommand(
		a.newMapAddCommand(),
		a.newMapRemoveCommand(),
		a.newMapListCommand(),
		a.newMapActionsCommand(),
	)
	return cmd
}

func (a *App) newMapAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <keys> <action> [args...]",
		Short: "Bind keys to a kitty action",
		Example: `  kittyconf map add ctrl+shift+t new_tab
  kittyconf map add ctrl+shift+enter launch --cwd=current`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := keymap.Mapping{
				Keys:   args[0],
				Action: args[1],
				Args:   strings.Join(args[2:], " "),
			}
			if _, ok := keymap.Lookup(m.Action); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %q is not a known action; it is kept as written\n",
					WarningStyle.Render("Warning:"), m.Action)
			}

			id, err := a.session.AddMapping(cmd.Context(), m)
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SubtitleStyle.Render("["+id+"]"), m.Line())
			return nil
		},
	}
	// Action arguments such as --cwd=current belong to kitty.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *App) newMapRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a key mapping by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.RemoveMapping(cmd.Context(), args[0]); err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			return nil
		},
	}
}

func (a *App) newMapListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List key mappings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			mappings := a.session.Mappings()
			if len(mappings) == 0 {
				fmt.Fprintln(w, SubtitleStyle.Render("No key mappings."))
				return nil
			}
			for _, m := range mappings {
				fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("["+m.ID+"]"), m.Line())
			}
			return nil
		},
	}
}

func (a *App) newMapActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions kittyconf knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, g := range keymap.Groups() {
				fmt.Fprintln(w, TitleStyle.Render(g.Label))
				for _, act := range g.Actions {
					line := "  " + KeyStyle.Render(act.Value) + " " + act.Label
					if act.Hint != "" {
						line += SubtitleStyle.Render(" e.g. " + act.Hint)
					}
					fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}
