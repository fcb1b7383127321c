package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaign's levels",
	Long:  `Shows the registered levels in campaign order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Campaign:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxIDLen, "ID", "Title")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxIDLen, "--", "-----")
	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'skybattle play [id]' to take off.")
}
