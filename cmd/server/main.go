// Package main is the entry point for the card API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "card-api",
	Short: "Creature Card Wizard API",
	Long:  `card-api serves the creature card wizard: sketch upload, interview, color picking, and AI card generation.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
