package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/salesdesk/internal/buildinfo"
	"github.com/dmitrijs2005/salesdesk/internal/client/auth"
	"github.com/dmitrijs2005/salesdesk/internal/client/backupsink"
	"github.com/dmitrijs2005/salesdesk/internal/client/cli"
	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	hc := client.New(cfg.Client(), store, client.WithLogger(logger))

	sink, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}

	products := services.NewProductService(hc)
	sales := services.NewSaleService(hc)

	app := cli.NewApp(cli.Deps{
		Store:     store,
		Products:  products,
		Sales:     sales,
		Reports:   services.NewReportService(hc),
		Settings:  services.NewSettingsService(hc),
		Profile:   services.NewProfileService(hc),
		Backups:   services.NewBackupService(hc),
		Logs:      services.NewLogService(hc),
		Dashboard: dashboard.NewLoader(products, sales, nil),
		Sink:      sink,
		Log:       logger,
	})

	ctrl := auth.NewController(services.NewAuthAPI(hc), store, app, logger)
	app.SetAuth(ctrl)
	hc.SetSessionLostHandler(ctrl.SessionLost)

	return app.Run(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Ephemeral {
		return session.NewMemoryStore(), func() {}, nil
	}

	s, err := session.OpenSQLiteStore(ctx, cfg.SessionDB)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store %s: %w", cfg.SessionDB, err)
	}
	return s, func() { _ = s.Close() }, nil
}

func openSink(ctx context.Context, cfg *config.Config) (backupsink.Sink, error) {
	if !cfg.UseS3() {
		return backupsink.NewFileSink(cfg.BackupDir), nil
	}

	s, err := backupsink.NewS3Sink(ctx, cfg.S3())
	if err != nil {
		return nil, fmt.Errorf("init s3 backup sink: %w", err)
	}
	return s, nil
}
