package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sectiond/internal/api"
	"sectiond/internal/config"
	"sectiond/internal/pipeline"
	"sectiond/internal/policy"
	"sectiond/internal/store"
	"sectiond/internal/watch"
)

var (
	serveAddr    string
	serveSrc     string
	serveData    string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sections and policy evaluations over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $SECTIOND_ADDR)")
	serveCmd.Flags().StringVar(&serveSrc, "src", "", "source document directory (default $SECTIOND_SOURCE_DIR)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "serialized section directory (default $SECTIOND_DATA_DIR)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "disable source directory watching")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveSrc != "" {
		cfg.SourceDir = serveSrc
	}
	if serveData != "" {
		cfg.DataDir = serveData
	}
	if serveNoWatch {
		cfg.Watch = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rules := policy.Default()
	if cfg.PolicyPath != "" {
		var err error
		rules, err = policy.LoadFile(cfg.PolicyPath)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		log.Info("loaded policy override", "path", cfg.PolicyPath, "rules", len(rules))
	}
	engine := policy.NewEngine(rules)

	st := store.New(store.FileLoader(cfg.DataDir), log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Watch {
		runner := pipeline.NewRunner(cfg.SourceDir, cfg.WorkerCount, log)
		w, err := watch.New(runner, st, cfg.SourceDir, cfg.WatchDebounce, log)
		if err != nil {
			log.Warn("watcher disabled", "error", err)
		} else {
			go w.Run(ctx)
		}
	}

	srv := api.NewServer(st, engine, log, cfg)
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting sectiond", "addr", cfg.Addr, "data", cfg.DataDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
