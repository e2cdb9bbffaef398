package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"

	excelexport "firmasecuador/ms_reportes_core/internal/adapters/export/excel"
	authhandler "firmasecuador/ms_reportes_core/internal/adapters/http/auth"
	healthhandler "firmasecuador/ms_reportes_core/internal/adapters/http/health"
	reporthandler "firmasecuador/ms_reportes_core/internal/adapters/http/report"
	reportmysql "firmasecuador/ms_reportes_core/internal/adapters/report/mysql"
	reportremote "firmasecuador/ms_reportes_core/internal/adapters/report/remote"
	usermysql "firmasecuador/ms_reportes_core/internal/adapters/user/mysql"
	appauth "firmasecuador/ms_reportes_core/internal/application/auth"
	apphealth "firmasecuador/ms_reportes_core/internal/application/health"
	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	"firmasecuador/ms_reportes_core/internal/infrastructure/config"
	"firmasecuador/ms_reportes_core/internal/infrastructure/database"
	"firmasecuador/ms_reportes_core/internal/infrastructure/http/middleware"
	"firmasecuador/ms_reportes_core/internal/infrastructure/http/server"
	"firmasecuador/ms_reportes_core/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "service stopped: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.App.Name, cfg.Log.Level, cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPool(ctx, database.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	log.Info("database connection established", "database", cfg.Database.Database)

	if err := database.RunMigrations(ctx, db, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	dbSource := reportmysql.NewRepository(db, log)
	remoteSource := reportremote.NewClient(reportremote.Config{
		BaseURL:  cfg.RemoteAPI.BaseURL,
		Username: cfg.RemoteAPI.Username,
		Password: cfg.RemoteAPI.Password,
		TokenTTL: cfg.RemoteAPI.TokenTTL,
		Timeout:  cfg.RemoteAPI.APITimeout,
	}, log)

	reportService := appreport.NewService(appreport.NewRoutedSource(dbSource, remoteSource), log)
	authService := appauth.NewService(usermysql.NewRepository(db, log), appauth.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	}, log)
	healthService := apphealth.NewService(apphealth.Metadata{
		Service:     cfg.App.Name,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	}, db)

	authenticator, err := middleware.NewJWTAuthenticator(cfg.Auth, log)
	if err != nil {
		return fmt.Errorf("configure authenticator: %w", err)
	}

	srv, err := server.New(server.Options{
		Addr:          cfg.HTTP.Address(),
		Logger:        log,
		Authenticator: authenticator,
		Health:        healthhandler.NewHandler(healthService),
		Auth:          authhandler.NewHandler(authService, log),
		Report: reporthandler.NewHandler(reportService, dbSource,
			excelexport.NewExporter(log), cfg.Reports.PageSize, cfg.Reports.MinIndicatorDuration, log),
		ExportTimeout: cfg.HTTP.WriteTimeout,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	log.Info("service starting",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"auth_enabled", cfg.Auth.Enabled)

	return srv.Run(ctx)
}
