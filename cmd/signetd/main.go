// signetd verifies that hosted gateway sites have legitimately designated an
// ethereum records signer and issues countersigned approval statements.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sufield/signet/internal/adapters/inbound/httpapi"
	"github.com/sufield/signet/internal/adapters/outbound/boltstore"
	"github.com/sufield/signet/internal/adapters/outbound/ethsign"
	"github.com/sufield/signet/internal/adapters/outbound/pages"
	"github.com/sufield/signet/internal/app"
	"github.com/sufield/signet/internal/config"
	"github.com/sufield/signet/internal/counter"
	"github.com/sufield/signet/internal/registry"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configPath := flag.String("config", "", "Path to signetd config file (optional; env vars alone can configure the service)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("signetd %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(log, *configPath); err != nil {
		log.Error("signetd failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath string) error {
	var fileCfg config.FileConfig
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
		log.Info("loaded config file", "path", configPath)
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return err
	}
	cfg, err := config.Validate(fileCfg)
	if err != nil {
		return err
	}

	// The approver key is checked once here; a bad key must fail startup,
	// not the first verification request.
	signer, err := ethsign.NewSigner(cfg.PrivateKey)
	if err != nil {
		return err
	}
	log.Info("approver key loaded", "approver", signer.Address().String())

	store, err := boltstore.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("error closing store", "error", err)
		}
	}()

	counters := counter.New(store)
	defer counters.Close()

	service := app.New(
		ethsign.NewValidator(),
		pages.New(cfg.FetchTimeout),
		signer,
		registry.New(counters, store),
		cfg.Resolver,
		cfg.ChainID,
		log,
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpapi.New(service, log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("signetd listening",
			"addr", cfg.ListenAddr,
			"resolver", cfg.Resolver,
			"chain_id", cfg.ChainID,
			"store", cfg.StorePath,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
