package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vividmap/recolor/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `Display the most recent conversions recorded by the interactive prompt.

Examples:
  recolor history
  recolor history --limit 50
  recolor history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of conversions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearConversions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	entries, err := store.RecentConversions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent conversions")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No conversions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'recolor' and convert a color to start the history.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-10s  %s\n", "Muted", "Vivid", "Date")
	fmt.Printf("  %-8s  %-10s  %s\n", "-----", "-----", "----")

	// Print entries, newest first
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %s\n", e.Muted, e.Vivid, dateStr)
	}

	fmt.Println()
	total, err := store.CountConversions()
	if err == nil {
		fmt.Printf("Total: %d\n", total)
	}
}
