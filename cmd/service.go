package cmd

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/isometry/qr-link-opener/internal/config"
	"github.com/isometry/qr-link-opener/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func cmdServe() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s", "service", "server"},
		Short:   "Listen for scans and open their destination in the default browser",
		Args:    cobra.NoArgs,
		RunE:    runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger = logger.With("mode", "service")
	logger.Info("spawning...")

	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	logger.Debug("creating runtime...")
	rtm := runtime.NewRuntime(env.handler,
		runtime.WithLogger(logger.With("component", "runtime")))

	addr := net.JoinHostPort(config.Service.Addr, config.Service.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to bind listener", slog.String("address", addr), slog.Any("error", err))
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}

	env.console.Serving(ln.Addr().String())
	logger.Info("serving...", slog.String("address", ln.Addr().String()), slog.String("readTimeout", config.Service.ReadTimeout.String()))
	return serve(cmd.Context(), ln, rtm)
}

// serve handles scans on ln until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	s := &http.Server{
		Handler:           h,
		ReadTimeout:       config.Service.ReadTimeout,
		ReadHeaderTimeout: config.Service.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listener stopped")
	case <-ctx.Done():
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shut down listener")
		}
		return nil
	}
}
