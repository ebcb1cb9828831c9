// Package main provides the entry point for the Intersync backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intersync",
	Short: "Intersync resume tailoring backend",
	Long:  "Intersync tailors resumes to job descriptions, suggests portfolio projects from a curated catalog, and renders LaTeX documents, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
