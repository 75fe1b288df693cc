// File path: cmd/site/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/immensecng/cylinder-retest/internal/api"
	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/common/telemetry"
	"github.com/immensecng/cylinder-retest/internal/config"
	"github.com/immensecng/cylinder-retest/internal/session"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/sqlite"
	"github.com/immensecng/cylinder-retest/internal/web"
)

type serveOptions struct {
	addr        string
	inquiryDB   string
	contentFile string
	whatsApp    string
	noSeed      bool
}

// apply overrides cfg with every flag the user set explicitly.
func (o serveOptions) apply(cfg config.Config, changed func(name string) bool) config.Config {
	if changed("addr") {
		cfg.Addr = strings.TrimSpace(o.addr)
	}
	if changed("inquiry-db") {
		cfg.InquiryDBPath = strings.TrimSpace(o.inquiryDB)
	}
	if changed("content") {
		cfg.ContentFile = strings.TrimSpace(o.contentFile)
	}
	if changed("whatsapp") {
		cfg.WhatsAppNumber = strings.TrimSpace(o.whatsApp)
	}
	if changed("no-seed") && o.noSeed {
		cfg.SeedRecords = false
	}
	return cfg
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg = opts.apply(cfg, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	defaults := config.DefaultConfig()
	cmd.Flags().StringVar(&opts.addr, "addr", defaults.Addr, "listen address")
	cmd.Flags().StringVar(&opts.inquiryDB, "inquiry-db", "", "SQLite file for the contact inquiry log (disabled when empty)")
	cmd.Flags().StringVar(&opts.contentFile, "content", "", "YAML file overriding the built-in site content")
	cmd.Flags().StringVar(&opts.whatsApp, "whatsapp", "", "WhatsApp number receiving contact inquiries")
	cmd.Flags().BoolVar(&opts.noSeed, "no-seed", false, "start new sessions with an empty degassing tracker")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := common.Logger()

	content, err := site.Load(cfg.ContentFile)
	if err != nil {
		return err
	}
	renderer, err := web.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	registry := session.NewRegistry(
		session.WithTTL(cfg.SessionTTL),
		session.WithMaxSessions(cfg.MaxSessions),
		session.WithSeedRecords(cfg.SeedRecords),
	)

	options := []api.Option{api.WithContent(content)}
	if cfg.InquiryLogEnabled() {
		store, err := sqlite.Open(cfg.InquiryDBPath)
		if err != nil {
			return fmt.Errorf("open inquiry log: %w", err)
		}
		defer store.Close()
		options = append(options, api.WithInquiryLog(store))
	} else {
		logger.Info("site: inquiry log disabled")
	}

	server, err := api.NewServer(registry, renderer, &api.Config{
		WhatsAppNumber: cfg.WhatsAppNumber,
		SecureCookies:  cfg.SecureCookies,
	}, options...)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reachable := cfg.Addr
		if strings.HasPrefix(reachable, ":") {
			reachable = "localhost" + reachable
		}
		logger.Info("site: server listening", "addr", cfg.Addr, "health", fmt.Sprintf("http://%s/healthz", reachable))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return registry.Run(gctx, cfg.SweepInterval, func(removed, live int) {
			telemetry.RecordSessionSweep(removed, live)
			if removed > 0 {
				logger.Info("session: expired sessions swept", "removed", removed, "live", live)
			}
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("site: shutting down", "grace", cfg.ShutdownGrace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("site: server stopped", "error", err)
		return err
	}
	logger.Info("site: server stopped")
	return nil
}
