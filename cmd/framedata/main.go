// Package main is the entry point for the frame data importer
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "framedata",
	Short: "Tekken 8 frame data importer",
	Long:  `framedata imports Tekken 8 frame data from Wavu Wiki movelist pages, resolves move chains into flattened records, and stores them per character.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(dumpCmd)
}
