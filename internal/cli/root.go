// Package cli implements the kittyconf command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/loader"
	"github.com/dshills/kittyconf/internal/persist"
	"github.com/dshills/kittyconf/internal/session"
)

// BuildInfo is set from the main package's ldflags variables.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String returns a formatted version string.
func (b BuildInfo) String() string {
	if b.Version == "" || b.Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// App holds the I/O streams and collaborators shared by all commands.
type App struct {
	In   io.Reader
	Out  io.Writer
	Err  io.Writer
	Env  []string
	Info BuildInfo

	// Clipboard writes to the system clipboard.
	Clipboard func(string) error

	// HTTPClient is used by import.
	HTTPClient *http.Client

	// NewScreen creates the screen for edit.
	NewScreen func() (tcell.Screen, error)

	// IsTerminal reports whether a stream is an interactive terminal.
	IsTerminal func(any) bool

	flags   rootFlags
	config  loader.AppConfig
	logger  *log.Logger
	session *session.Session
}

type rootFlags struct {
	configPath string
	dataDir    string
	logLevel   string
	baseURL    string
	verbose    bool
}

// NewApp returns an App bound to the process streams.
func NewApp(info BuildInfo) *App {
	return &App{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		Env:        os.Environ(),
		Info:       info,
		Clipboard:  clipboard.WriteAll,
		HTTPClient: http.DefaultClient,
		NewScreen:  tcell.NewScreen,
		IsTerminal: isTerminal,
	}
}

// NewRootCommand builds the command tree.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "kittyconf",
		Short: "Generate and share kitty.conf files",
		Long: TitleStyle.Render("kittyconf") + SubtitleStyle.Render(" - generate and share kitty.conf files") + `

kittyconf keeps a session of edited kitty settings, writes a kitty.conf
holding only what differs from kitty's defaults, and turns the session into
a link that can be opened elsewhere.

` + SubtitleStyle.Render("Examples:") + `
  kittyconf set font_size 13       Change a setting
  kittyconf generate -o kitty.conf Write the config
  kittyconf share --copy           Copy a share link
  kittyconf open '<link>'          Load a shared config
  kittyconf edit                   Interactive editor`,
		Version:           a.Info.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default is <config dir>/kittyconf/config.toml)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "directory holding the saved session")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "page share links point at")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	root.AddCommand(
		a.newGenerateCommand(),
		a.newShowCommand(),
		a.newGetCommand(),
		a.newSetCommand(),
		a.newResetCommand(),
		a.newCatalogCommand(),
		a.newShareCommand(),
		a.newOpenCommand(),
		a.newImportCommand(),
		a.newMapCommand(),
		a.newWatchCommand(),
		a.newPresetCommand(),
		a.newEditCommand(),
	)
	return root
}

// setup loads configuration, builds the logger and hydrates the session.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loader.Load(loader.Options{
		Path: a.flags.configPath,
		Env:  loader.NewEnvLoaderFrom(loader.EnvPrefix, a.Env),
	})
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	if err := a.applyFlags(&cfg); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	a.config = cfg

	a.logger = log.NewWithOptions(a.Err, log.Options{
		Prefix: "kittyconf",
		Level:  cfg.Level(),
	})

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}
	a.logger.Debug("session storage", "dir", dir)

	a.session = session.New(catalog.Builtin(),
		session.WithStorage(persist.NewDirStorage(dir)),
		session.WithLocation(session.NewLocation(cfg.BaseURL)),
		session.WithLogger(a.logger),
	)
	return a.session.Hydrate(cmd.Context())
}

func (a *App) applyFlags(cfg *loader.AppConfig) error {
	if a.flags.dataDir != "" {
		cfg.DataDir = a.flags.dataDir
	}
	if a.flags.baseURL != "" {
		cfg.BaseURL = a.flags.baseURL
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}

// Execute runs the command line and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(a.Err, ErrorStyle.Render("Error: ")+exitErr.Err.Error())
		}
		return exitErr.Code
	}
	fmt.Fprintln(a.Err, ErrorStyle.Render("Error: ")+err.Error())
	return ExitFailure
}
