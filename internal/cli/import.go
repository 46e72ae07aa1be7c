package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/kittyconf/internal/importer"
	"github.com/dshills/kittyconf/internal/preset"
	"github.com/dshills/kittyconf/internal/session"
	"github.com/dshills/kittyconf/internal/watcher"
)

const maxStdinBytes = 4 << 20

func (a *App) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|url|->",
		Short: "Replace the session with an existing kitty.conf",
		Long: `Replace the session with the settings and key mappings of a kitty.conf.
The source is a local file, an http(s) URL (GitHub file pages are fetched
raw) or - for standard input. Unknown options are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readSource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			stats, err := a.session.ImportText(cmd.Context(), text)
			if err != nil {
				return err
			}
			a.printImport(cmd.ErrOrStderr(), stats)
			return nil
		},
	}
}

func (a *App) readSource(ctx context.Context, src string) (string, error) {
	switch {
	case src == "-":
		if a.IsTerminal(a.In) {
			return "", &ExitError{Code: ExitUsage, Err: errors.New("refusing to read a config from an interactive terminal")}
		}
		data, err := io.ReadAll(io.LimitReader(a.In, maxStdinBytes))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil

	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		opts := []importer.Option{
			importer.WithHTTPClient(a.HTTPClient),
			importer.WithUserAgent("kittyconf/" + a.Info.Version),
		}
		if _, err := importer.RawURL(src); errors.Is(err, importer.ErrUnsupportedURL) {
			opts = append(opts, importer.WithoutRewrite())
		}
		client := importer.New(opts...)
		a.logger.Debug("fetching config", "url", src)
		return client.Fetch(ctx, src)

	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func (a *App) printImport(w io.Writer, stats session.ImportStats) {
	fmt.Fprintf(w, "%s %d settings, %d key mappings\n",
		SuccessStyle.Render("Imported"), stats.Applied, stats.Mappings)
	if len(stats.Unknown) > 0 {
		fmt.Fprintf(w, "%s skipped unknown options: %s\n",
			WarningStyle.Render("Warning:"), strings.Join(stats.Unknown, ", "))
	}
}

func (a *App) newWatchCommand() *cobra.Command {
	var (
		output   string
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-import a kitty.conf whenever it changes",
		Long: `Import the file, then import it again every time it is saved. With
--output the generated kitty.conf is rewritten after every import. Stop with
Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			errOut := cmd.ErrOrStderr()

			reimport := watcher.Reimport(a.session, func(stats session.ImportStats) {
				a.printImport(errOut, stats)
				if output == "" {
					return
				}
				if err := a.writeConfig(ctx, output, false); err != nil {
					a.logger.Error("writing config", "path", output, "err", err)
				}
			})

			if err := reimport(ctx, args[0]); err != nil {
				return err
			}

			w, err := watcher.New(args[0], reimport,
				watcher.WithDebounce(debounce),
				watcher.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			fmt.Fprintln(errOut, SubtitleStyle.Render("Watching "+w.Path()))
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "rewrite this kitty.conf after every import")
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before re-importing")
	return cmd
}

func (a *App) writeConfig(ctx context.Context, path string, permalink bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.session.Generate(ctx, f, a.Info.Version, permalink); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (a *App) newPresetCommand() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "preset <script.lua>",
		Short: "Run a Lua preset script against the session",
		Long: `Run a Lua script that edits the session through the kitty module:

  local kitty = require("kitty")
  kitty.set("font_size", "13")
  kitty.map("ctrl+shift+t", "new_tab")

Scripts run in a sandbox without file or process access.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := preset.NewRunner(a.session,
				preset.WithTimeout(timeout),
				preset.WithLogger(a.logger),
				preset.WithOutput(cmd.OutOrStdout()),
			)
			defer func() { _ = r.Close() }()

			res, err := r.RunFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d settings, %d key mappings\n",
				SuccessStyle.Render("Preset applied:"), res.Set, res.Mapped)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", preset.DefaultTimeout, "maximum script run time")
	return cmd
}
