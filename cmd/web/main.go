// @title           Job Tracker API
// @version         1.0
// @description     Job postings, applications, interviews and notes for job seekers and companies.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobtracker_backend/database"
	"jobtracker_backend/internal/app"
	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/logger"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configFlag := &cli.StringFlag{
		Name:  "config",
		Usage: "path to the YAML config file",
		Value: config.DefaultPath(),
	}

	cmd := &cli.Command{
		Name:  "jobtracker",
		Usage: "job application tracking API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Flags:  []cli.Flag{configFlag},
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Flags:  []cli.Flag{configFlag},
				Action: migrateAction,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	return cfg, nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

func migrateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		return err
	}
	logger.Info("Database schema migrated")
	return nil
}
