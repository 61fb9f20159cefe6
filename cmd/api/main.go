package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "vetdesk/internal/adapters/storage/memory"
	pg "vetdesk/internal/adapters/storage/postgres"
	"vetdesk/internal/platform/config"
	"vetdesk/internal/platform/logger"
	"vetdesk/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title VetDesk API
// @version 1.0
// @description Listados de la práctica veterinaria y wizards de alta (edit -> verify -> confirm).
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:          "vetdesk",
		Short:        "API de la práctica veterinaria",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "archivo de configuración (.toml, .yaml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "puerto HTTP (pisa config y PORT)")

	cmd.AddCommand(newMigrateCmd(&configPath))
	return cmd
}

// newMigrateCmd crea las tablas en Postgres y opcionalmente carga los datasets de ejemplo.
func newMigrateCmd(configPath *string) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Crea el schema de Postgres (DB_DSN) y opcionalmente lo llena con los datasets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.DB.DSN == "" {
				return errors.New("migrate: DB_DSN is not set")
			}

			log := newLogger(cfg)
			defer func() { _ = log.Sync() }()

			db, err := pg.Open(cfg.DB.DSN)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := pg.EnsureSchema(ctx, db); err != nil {
				return err
			}
			log.Info("schema ready", nil)

			if !seed {
				return nil
			}
			ds := pg.Dataset{
				Organizations: mem.SeedOrganizations(),
				Owners:        mem.SeedOwners(),
				Pets:          mem.SeedPets(),
			}
			if err := pg.Seed(ctx, db, ds); err != nil {
				return err
			}
			log.Info("datasets loaded", map[string]any{
				"organizations": len(ds.Organizations),
				"owners":        len(ds.Owners),
				"pets":          len(ds.Pets),
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "cargar los datasets de ejemplo")
	return cmd
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}

func run(ctx context.Context, cfg config.Config) error {
	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	var db *sqlx.DB
	if cfg.DB.DSN != "" {
		opened, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"err": err})
			return fmt.Errorf("open postgres: %w", err)
		}
		db = opened
		defer db.Close()
		log.Info("using postgres collections", nil)
	} else {
		log.Info("using in-memory datasets", nil)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:         db,
			Logger:     log,
			LoginDelay: cfg.Login.Delay.Duration,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
