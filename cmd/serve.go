package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrewpaige1/todolists/config"
	"github.com/andrewpaige1/todolists/handlers"
	"github.com/andrewpaige1/todolists/logger"
	"github.com/andrewpaige1/todolists/middleware"
	"github.com/andrewpaige1/todolists/migrations"
	"github.com/andrewpaige1/todolists/store"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
}

// NewServer wires the store, routes and middleware into one handler.
func NewServer(cfg *config.Config, db *gorm.DB) (http.Handler, error) {
	protect, err := middleware.EnsureValidToken(cfg.Auth)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	(&handlers.DBHandler{Store: store.New(db)}).Routes(mux, protect)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	return middleware.RequestLogger(corsHandler), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	log := logger.Module("server")

	db, closeDB, err := connect(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if !skipMigrations {
		if err := migrations.Up(db); err != nil {
			return err
		}
	}

	handler, err := NewServer(cfg, db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "driver", cfg.Database.Driver, "auth", cfg.Auth.Enabled())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
