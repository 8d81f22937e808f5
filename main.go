package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	booking "furniture-booking/internal/bookingService"
	"furniture-booking/internal/config"
	"furniture-booking/internal/render"
	"furniture-booking/internal/repository"
	"furniture-booking/internal/server"
	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:           "furniture-booking",
		Short:         "Serve the furniture catalog and booking site",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".env")
			if err != nil {
				utils.Error("failed to load configuration", map[string]any{"error": err.Error()})
				return err
			}
			if port != "" {
				if err := config.ValidatePort(port); err != nil {
					utils.Error("invalid --port", map[string]any{"error": err.Error()})
					return err
				}
				cfg.Port = port
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT, default 8000)")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	utils.SetLevel(cfg.LogLevel)

	store := repository.NewFileStore(cfg.DataDir)
	// furniture.json is seed data and is never created here
	if err := store.EnsureCollections(repository.Users, repository.Bookings, repository.Payments); err != nil {
		utils.Error("failed to prepare data directory", map[string]any{"dir": cfg.DataDir, "error": err.Error()})
		return err
	}

	bookingSvc := booking.NewBookingService(store)
	renderer := render.NewRenderer(os.DirFS(cfg.TemplateDir))

	gin.SetMode(gin.ReleaseMode)
	router := server.SetupRouter(bookingSvc, renderer, server.Options{
		WriteRateLimit: rate.Limit(cfg.RateLimitRPS),
		WriteBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		utils.Info("starting furniture booking server", map[string]any{
			"addr":      srv.Addr,
			"data_dir":  cfg.DataDir,
			"templates": cfg.TemplateDir,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			utils.Error("server failed", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	utils.Info("shutting down server", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
		return err
	}
	utils.Info("server stopped", nil)
	return nil
}
