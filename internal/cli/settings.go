package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/kittyconf/internal/catalog"
)

func (a *App) newGenerateCommand() *cobra.Command {
	var (
		output    string
		permalink bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write kitty.conf for the current session",
		Long: `Write a kitty.conf holding every setting that differs from kitty's
default, followed by the key mappings. With no --output the file path from
the configuration is used, or standard output when that is empty too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = a.config.Output
			}
			if output == "" || output == "-" {
				return a.session.Generate(cmd.Context(), cmd.OutOrStdout(), a.Info.Version, permalink)
			}

			if err := a.writeConfig(cmd.Context(), output, permalink); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render("Wrote ")+output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (- for stdout)")
	cmd.Flags().BoolVar(&permalink, "permalink", false, "include the share link as a comment")
	return cmd
}

func (a *App) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List settings that differ from the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printChanges(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *App) printChanges(w io.Writer) {
	st := a.session.Store()
	cat := a.session.Catalog()
	mappings := a.session.Mappings()

	if !st.HasChanges() && len(mappings) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No changes from defaults."))
		return
	}

	changed := make(map[string]bool)
	for _, e := range st.ChangedEntries() {
		changed[e.Key] = true
	}

	for _, c := range cat.Categories() {
		header := false
		for i := range c.Settings {
			s := &c.Settings[i]
			if !changed[s.Key] {
				continue
			}
			if !header {
				fmt.Fprintln(w, TitleStyle.Render(c.Title))
				header = true
			}
			fmt.Fprintf(w, "  %s %s %s\n",
				KeyStyle.Render(s.Key),
				displayValue(s, st.Get(s.Key), st.FileName(s.Key)),
				SubtitleStyle.Render("(default: "+s.Default+")"))
		}
	}

	if len(mappings) > 0 {
		fmt.Fprintln(w, TitleStyle.Render("Key mappings"))
		for _, m := range mappings {
			fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("["+m.ID+"]"), m.Line())
		}
	}
}

// displayValue shortens embedded files and decorates colors.
func displayValue(s *catalog.Setting, value, fileName string) string {
	switch s.Type {
	case catalog.TypeFile:
		if fileName == "" {
			fileName = "embedded file"
		}
		return ChangedStyle.Render(fmt.Sprintf("<%s, %d bytes>", fileName, len(value)))
	case catalog.TypeColor:
		if sw := swatch(value); sw != "" {
			return sw + " " + ChangedStyle.Render(value)
		}
	}
	return ChangedStyle.Render(value)
}

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the current value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.Catalog().Has(args[0]) {
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", catalog.ErrUnknownSetting, args[0])}
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.session.Store().Get(args[0]))
			return nil
		},
	}
}

func (a *App) newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: `Change a setting. For file settings such as background_image the value
is a path; the file is embedded into the session.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := strings.Join(args[1:], " ")

			s := a.session.Catalog().Get(key)
			if s == nil {
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", catalog.ErrUnknownSetting, key)}
			}

			var fileName string
			if s.Type == catalog.TypeFile && value != s.Default {
				data, err := os.ReadFile(value)
				if err != nil {
					return err
				}
				fileName = filepath.Base(value)
				value = dataURL(fileName, data)
			} else {
				value = catalog.Normalize(s, value)
				if err := s.Check(value); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
				}
			}

			if err := a.session.Set(cmd.Context(), key, value); err != nil {
				return err
			}
			if fileName != "" {
				a.session.Store().SetFileName(key, fileName)
			}
			return nil
		},
	}
	// Values may start with a dash.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// dataURL embeds data as a base64 data URL typed by the file extension.
func dataURL(name string, data []byte) string {
	mediaType := mime.TypeByExtension(filepath.Ext(name))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (a *App) newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [key]",
		Short: "Reset one setting, or everything, to the defaults",
		Long: `Reset one setting to its default. Without a key every setting and every
key mapping is reset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := a.session.ResetAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), SuccessStyle.Render("Reset to defaults."))
				return nil
			}

			s := a.session.Catalog().Get(args[0])
			if s == nil {
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", catalog.ErrUnknownSetting, args[0])}
			}
			return a.session.Set(cmd.Context(), s.Key, s.Default)
		},
	}
}

func (a *App) newCatalogCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List known settings and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := a.session.Catalog()
			categories := cat.Categories()
			if category != "" {
				c, ok := cat.Category(category)
				if !ok {
					return &ExitError{Code: ExitUsage, Err: fmt.Errorf("unknown category %q", category)}
				}
				categories = []catalog.Category{c}
			}

			w := cmd.OutOrStdout()
			st := a.session.Store()
			for _, c := range categories {
				fmt.Fprintln(w, TitleStyle.Render(c.Title)+SubtitleStyle.Render(" ("+c.ID+")"))
				for i := range c.Settings {
					s := &c.Settings[i]
					key := KeyStyle.Render(s.Key)
					if st.IsChanged(s.Key) {
						key = ChangedStyle.Render(s.Key)
					}
					fmt.Fprintf(w, "  %s %s %s\n", key, SubtitleStyle.Render(s.Type.String()), s.Default)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (e.g. fonts)")
	return cmd
}
