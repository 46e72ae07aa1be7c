package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/kittyconf/internal/session"
	"github.com/dshills/kittyconf/internal/share"
)

// ErrNoConfiguration indicates a link that carries nothing to load.
var ErrNoConfiguration = errors.New("link carries no configuration")

func (a *App) newShareCommand() *cobra.Command {
	var copyLink bool
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a link that reproduces this session",
		Long: `Print a link holding every changed setting and key mapping. Embedded
files are not part of the link.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			link, err := a.session.ShareURL(cmd.Context())
			if err != nil {
				return err
			}
			if share.TokenFromURL(link) == "" {
				return &ExitError{Code: ExitFailure, Err: session.ErrNothingToShare}
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
			if len(link) > a.config.MaxURLLength {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s link is %d characters; some sites truncate links over %d\n",
					WarningStyle.Render("Warning:"), len(link), a.config.MaxURLLength)
			}
			if copyLink {
				if err := a.Clipboard(link); err != nil {
					return fmt.Errorf("copying link: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render("Link copied!"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyLink, "copy", "c", false, "copy the link to the clipboard")
	return cmd
}

func (a *App) newOpenCommand() *cobra.Command {
	var force, dismiss bool
	cmd := &cobra.Command{
		Use:   "open <link>",
		Short: "Load a shared link into the session",
		Long: `Load a shared link. A session without local changes takes the link
content directly. When the session has its own changes that differ from the
link, the differences are listed and nothing changes unless --force (use the
link) or --dismiss (keep local changes) is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.session.Location().Replace(args[0])

			res, err := a.session.LoadFromURL(ctx)
			if err != nil {
				return err
			}
			a.logger.Debug("link loaded", "result", res)

			out := cmd.ErrOrStderr()
			switch res {
			case session.None:
				return &ExitError{Code: ExitFailure, Err: ErrNoConfiguration}
			case session.Applied:
				fmt.Fprintln(out, SuccessStyle.Render("Configuration loaded."))
				return nil
			}

			switch {
			case force:
				if err := a.session.ApplyPending(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, SuccessStyle.Render("Local changes replaced by the link."))
				return nil
			case dismiss:
				a.session.DismissPending()
				fmt.Fprintln(out, SuccessStyle.Render("Kept local changes."))
				return nil
			}

			a.printConflict(cmd.OutOrStdout())
			return &ExitError{
				Code: ExitConflict,
				Err:  errors.New("the link differs from local changes; rerun with --force to use it or --dismiss to keep yours"),
			}
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace local changes with the link")
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "keep local changes and ignore the link")
	cmd.MarkFlagsMutuallyExclusive("force", "dismiss")
	return cmd
}

// printConflict lists how the pending link differs from the session.
func (a *App) printConflict(w io.Writer) {
	p, ok := a.session.PendingPayload()
	if !ok {
		return
	}
	st := a.session.Store()
	cat := a.session.Catalog()

	fmt.Fprintln(w, TitleStyle.Render("The link differs from your changes"))

	incoming := make(map[string]bool, len(p.Entries))
	for _, e := range p.Entries {
		incoming[e.Key] = true
		if local := st.Get(e.Key); local != e.Value {
			fmt.Fprintf(w, "  %s %s -> %s\n", KeyStyle.Render(e.Key), local, ChangedStyle.Render(e.Value))
		}
	}
	for _, e := range st.ShareableEntries() {
		if !incoming[e.Key] {
			def := cat.Get(e.Key).Default
			fmt.Fprintf(w, "  %s %s -> %s\n", KeyStyle.Render(e.Key), e.Value, ChangedStyle.Render(def))
		}
	}

	if local := a.session.Mappings(); !p.Mappings.Same(local) {
		fmt.Fprintf(w, "  %s %d local, %d in link\n", KeyStyle.Render("key mappings"), len(local), len(p.Mappings))
	}
}
