// Command histsearch is an interactive reverse incremental search prompt
// for shell line editors.
//
// It reads a NUL-delimited history stream from stdin, runs the search
// prompt on the controlling terminal, and on acceptance writes three
// fields to stdout for the calling shell: whether to execute the entry
// ("true"/"false"), the cursor position within it, and the entry itself
// terminated by a NUL byte. Nothing is written on cancellation.
//
// The process exits 0 whether a selection was made or the user cancelled;
// a non-zero exit means the controlling terminal could not be set up.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"histsearch"
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		label string
		query string
		theme string
	)

	cmd := &cobra.Command{
		Use:     "histsearch",
		Short:   "reverse incremental search over a NUL-delimited history stream",
		Version: version,
		Args:    cobra.NoArgs,
		// Usage help on a runtime failure would corrupt the caller's view
		// of stderr; errors speak for themselves.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			colorScheme, err := lookupTheme(theme)
			if err != nil {
				return err
			}
			return run(label, query, colorScheme)
		},
	}

	cmd.Flags().StringVar(&label, "label", "bck-i-search: ", "prompt label shown before the query")
	cmd.Flags().StringVar(&query, "query", "", "initial search query")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, mono)")

	return cmd
}

func lookupTheme(name string) (*histsearch.ColorScheme, error) {
	switch name {
	case "default":
		return histsearch.ThemeDefault, nil
	case "mono":
		return histsearch.ThemeMono, nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

func run(label, query string, colorScheme *histsearch.ColorScheme) error {
	terminal, err := histsearch.OpenTerminal()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	defer terminal.Close()

	scanner := histsearch.NewEntryScanner(os.Stdin)
	history := histsearch.NewReplayBuffer(scanner.Next)

	search, err := histsearch.New(terminal, history,
		histsearch.WithLabel(label),
		histsearch.WithInitialQuery(query),
		histsearch.WithColorScheme(colorScheme),
	)
	if err != nil {
		return err
	}

	result, selected, err := search.Run()
	if err != nil {
		return err
	}

	if n := scanner.Dropped(); n > 0 {
		fmt.Fprintf(os.Stderr, "histsearch: dropped %d undecodable history entries\n", n)
	}

	if selected {
		fmt.Printf("%t\n%d\n%s\x00", result.Execute, result.Cursor, result.Entry)
	}
	return nil
}
