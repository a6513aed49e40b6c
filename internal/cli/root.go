package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kobzarvs/cjconf/internal/app"
)

type options struct {
	debug   bool
	version bool
}

var (
	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BAE67E"))
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#59C2FF"))
	versionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E6B450"))
)

// runTUI starts the interactive configurator and returns the files it saved.
var runTUI = func(opts app.Options) ([]string, error) {
	a := app.New(opts)
	err := a.Run()
	return a.Saved(), err
}

func NewRootCommand(version string) *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "cjconf",
		Short: "Interactive configurator for CJ's Shell startup files",
		Long: `cjconf edits ~/.cjshrc and ~/.cjprofile through a terminal menu.

Changes are made on a scratch copy and written back only after you
confirm them. Installed themes and plugins can be listed and removed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.version {
				fmt.Fprintln(out, versionLine(version))
				return nil
			}
			saved, err := runTUI(app.Options{Version: version, Debug: opts.debug})
			if err != nil {
				return err
			}
			printNotice(out, saved)
			return nil
		},
	}
	bindFlags(rootCmd.Flags(), &opts)
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVar(&opts.debug, "debug", false, "Write debug-level entries to the log file")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print version information")
}

func versionLine(version string) string {
	return versionStyle.Render("cjconf") + " " + version
}

// printNotice reminds the user that a running shell keeps its old settings.
func printNotice(w io.Writer, saved []string) {
	if len(saved) == 0 {
		return
	}
	paths := make([]string, len(saved))
	for i, p := range saved {
		paths[i] = pathStyle.Render(p)
	}
	fmt.Fprintln(w, noticeStyle.Render("Saved")+" "+strings.Join(paths, ", "))
	fmt.Fprintln(w, noticeStyle.Render("Restart your shell to apply the changes."))
}
