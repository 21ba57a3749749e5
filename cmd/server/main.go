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
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cropadvisor/config"
	"cropadvisor/database"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/metrics"
	"cropadvisor/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	root := &cobra.Command{
		Use:          "cropadvisor",
		Short:        "Smart crop advisory API and rule tools",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v)
		},
	}
	bindServeFlags(root, v)
	root.AddCommand(newServeCmd(), newAssessCmd(), newSuitabilityCmd(), newTablesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v)
		},
	}
	bindServeFlags(cmd, v)
	return cmd
}

// bindServeFlags registers the server flags. A flag that is set wins over
// the environment and .env.
func bindServeFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.String("port", "", "listen port (PORT)")
	f.String("db", "", "SQLite file (DB_PATH)")
	f.String("log-level", "", "debug|info|warn|error (LOG_LEVEL)")
	f.String("log-format", "", "json|console (LOG_FORMAT)")
	f.String("tables", "", "reference tables file or directory (TABLES_PATH)")
	for key, flag := range map[string]string{
		"port":        "port",
		"db_path":     "db",
		"log_level":   "log-level",
		"log_format":  "log-format",
		"tables_path": "tables",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
}

func serve(parent context.Context, v *viper.Viper) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.LoadWith(v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if !cfg.DotEnvLoaded {
		log.Info("no .env file found, using environment only")
	}

	db, err := database.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	tables, err := loadTables(cfg.TablesPath)
	if err != nil {
		return err
	}
	m, err := metrics.New()
	if err != nil {
		return err
	}
	handlers, err := buildHandlers(cfg, log, db, tables, m)
	if err != nil {
		return err
	}
	e := router.New(echo.New(), cfg, log, m, handlers)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.Any("tables", tables.Counts()))
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
