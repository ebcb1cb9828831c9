package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intersync-backend/internal/server"
)

var (
	servePort    int
	serveCatalog string
	serveModel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for building tailored resumes, suggesting projects, and skill graphs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a catalog JSON file overriding the embedded one")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override the generation model")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// AI tailoring is optional; without a key every request falls back.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set; AI tailoring disabled, serving fallback resumes")
	}

	cfg := server.Config{
		Port:        servePort,
		APIKey:      apiKey,
		Model:       serveModel,
		CatalogPath: serveCatalog,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
