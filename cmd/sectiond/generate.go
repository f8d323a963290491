package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sectiond/internal/config"
	"sectiond/internal/pipeline"
)

var (
	generateSrc     string
	generateOut     string
	generateWorkers int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Extract sections from source documents into JSON files",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSrc, "src", "", "source document directory (default $SECTIOND_SOURCE_DIR)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory for section JSON (default $SECTIOND_DATA_DIR)")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "concurrent extraction workers (default $SECTIOND_WORKERS)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if generateSrc != "" {
		cfg.SourceDir = generateSrc
	}
	if generateOut != "" {
		cfg.DataDir = generateOut
	}
	if generateWorkers > 0 {
		cfg.WorkerCount = generateWorkers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner := pipeline.NewRunner(cfg.SourceDir, cfg.WorkerCount, log)
	sources, err := runner.Discover()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no source documents in %s", cfg.SourceDir)
	}

	results := runner.Run(cmd.Context(), sources)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Error("extraction failed", "file", res.Source.File, "error", res.Err)
		}
	}
	if err := pipeline.WriteAll(cfg.DataDir, results); err != nil {
		return err
	}

	log.Info("sections generated",
		"total", len(results),
		"failed", failed,
		"out", cfg.DataDir,
	)
	return nil
}
