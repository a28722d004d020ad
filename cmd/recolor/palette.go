package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vividmap/recolor/internal/palette"
	"github.com/vividmap/recolor/internal/platform/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the muted → vivid table",
	Long: `Shows every entry of the active palette with color swatches.

Examples:
  recolor palette
  recolor palette --palette ./map-palette.yaml`,
	Run: runPalette,
}

func runPalette(cmd *cobra.Command, args []string) {
	pal, err := palette.Load(flagPalette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries := pal.Entries()
	if len(entries) == 0 {
		fmt.Println("Palette is empty.")
		return
	}

	// One entry takes ~26 cells; wide terminals get two columns
	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}
	cols := 1
	if width >= 72 {
		cols = 2
	}

	fmt.Printf("Palette (%d entries):\n\n", len(entries))

	for i := 0; i < len(entries); i += cols {
		line := "  "
		for j := i; j < i+cols && j < len(entries); j++ {
			e := entries[j]
			line += fmt.Sprintf("%s %s → %s %s    ",
				tui.Swatch(e.Muted), e.Muted,
				tui.Swatch(e.Vivid), e.Vivid)
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'recolor' to start converting.")
}
