package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Print every piece in all four rotations",
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

var randomizersCmd = &cobra.Command{
	Use:   "randomizers",
	Short: "List piece randomizers",
	Long:  `Shows the piece-selection policies that can be named in the config file.`,
	Args:  cobra.NoArgs,
	Run:   runRandomizers,
}

func runPieces(_ *cobra.Command, _ []string) {
	catalog := tetris.DefaultCatalog()

	for i, t := range catalog {
		fmt.Printf("%s\n", t.Symbol)
		rotations := catalog.Rotations(i)

		// Print the four states side by side
		var grids [4][]string
		for r, shape := range rotations {
			grids[r] = strings.Split(strings.TrimRight(shape.String(), "\n"), "\n")
		}
		for row := range grids[0] {
			parts := make([]string, len(grids))
			for r := range grids {
				parts[r] = grids[r][row]
			}
			fmt.Printf("  %s\n", strings.Join(parts, "   "))
		}
		fmt.Println()
	}
}

func runRandomizers(_ *cobra.Command, _ []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No randomizers available.")
		return
	}

	fmt.Println("Available randomizers:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, r := range list {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, r := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.ID, r.Description)
	}

	fmt.Println()
	fmt.Println("Set 'randomizer: <id>' in the config file to choose one.")
}
