package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/client-directory/internal/auth"
	"github.com/BruksfildServices01/client-directory/internal/routes"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.JWTSecret == "" {
				return errors.New("jwt_secret is required to serve the API (set JWT_SECRET)")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			services, err := a.initServices(ctx)
			if err != nil {
				return err
			}
			defer services.Close()

			if !a.cfg.IsDevMode() {
				gin.SetMode(gin.ReleaseMode)
			}

			router := routes.NewRouter(services.Directory, routes.Options{
				JWT:         auth.NewJWTManager(a.cfg.JWTSecret),
				CORSOrigins: a.cfg.CORSOrigins,
			})

			srv := &http.Server{
				Addr:              a.cfg.Addr(),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			slog.Info("Server running", "addr", a.cfg.Addr(), "store", a.cfg.Store)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			slog.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
