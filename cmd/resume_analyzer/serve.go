package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server exposing resume parsing, scoring, enhancement and rendering endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveAPIKey     string
	serveModel      string
	serveConfigFile string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: 8080)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model name (overrides GEMINI_MODEL env var)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(serveConfigFile, config.Config{
		Port:   servePort,
		APIKey: serveAPIKey,
		Model:  serveModel,
	})
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		Model:  resolveModel(cfg.Model),
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
