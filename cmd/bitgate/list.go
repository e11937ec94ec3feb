package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaign levels",
	Long:  `Shows the levels of the loaded campaign in play order.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	_, levels, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, def := range levels {
		if len(def.ID) > maxIDLen {
			maxIDLen = len(def.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Bits")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")
	for _, def := range levels {
		fmt.Printf("  %-*s  %-20s  %d\n", maxIDLen, def.ID, def.Name, def.MaskBits)
	}

	fmt.Println()
	fmt.Println("Run 'bitgate play <id>' to start from a level.")
}
