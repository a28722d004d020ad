// recolor is an interactive converter from muted 6-digit hex colors to
// their vivid 8-digit RGBA counterparts. Every resolved color is printed
// and placed on the clipboard for pasting into color configuration files.
//
// Usage:
//
//	recolor                  - Start the interactive prompt
//	recolor palette          - List the muted → vivid table
//	recolor history          - Show recent conversions
//	recolor serve            - Serve the prompt over SSH
//
// Global flags:
//
//	--palette <path>  - Custom palette YAML (default: built-in table)
//	--db <path>       - History database path (default: ~/.recolor/history.db)
//	--no-history      - Do not record conversions
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vividmap/recolor/internal/clipboard"
	"github.com/vividmap/recolor/internal/palette"
	"github.com/vividmap/recolor/internal/session"
	"github.com/vividmap/recolor/internal/storage"
)

var (
	// Global flags
	flagPalette   string
	flagDBPath    string
	flagNoHistory bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Convert muted hex colors to their vivid RGBA codes",
	Long: `recolor reads one color code per line, looks it up in the muted → vivid
table and prints the 8-digit RGBA result. Each resolved code is also
copied to the system clipboard, so it can be pasted straight into a
color configuration file.

Input is forgiving: case does not matter and a leading '#' is ignored.
An empty line (or Ctrl+D / Ctrl+C) ends the session.

Examples:
  recolor
  recolor --palette ./map-palette.yaml
  recolor --no-history
  recolor palette
  recolor history --limit 10
  recolor serve --ssh :2222`,
	Run: runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Path to a custom palette YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.recolor/history.db", "Path to history database")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record conversions")

	// Add subcommands
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func runRoot(cmd *cobra.Command, args []string) {
	pal, err := palette.Load(flagPalette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "recolor"})

	// Open history storage
	var history session.Recorder
	var store *storage.Store
	if !flagNoHistory {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without history - the loop still works
			store = nil
		} else {
			history = store
		}
	}

	// Ctrl+C at the prompt is a normal termination, not an error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		if store != nil {
			store.Close()
		}
		os.Exit(0)
	}()

	s := session.New(session.Config{
		In:        os.Stdin,
		Out:       os.Stdout,
		Resolver:  pal,
		Clipboard: clipboard.NewSystem(),
		History:   history,
		Logger:    logger,
	})

	runErr := s.Run(context.Background())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
