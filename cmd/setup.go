package cmd

import (
	"log/slog"

	"github.com/isometry/qr-link-opener/internal/config"
	"github.com/isometry/qr-link-opener/internal/console"
	"github.com/isometry/qr-link-opener/internal/handler"
	"github.com/isometry/qr-link-opener/internal/opener"
	"github.com/isometry/qr-link-opener/internal/target"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// environment holds what setup builds from the configuration.
type environment struct {
	handler *handler.Handler
	opener  opener.Opener
	console *console.Console
}

func (e *environment) close() {
	if err := e.opener.Close(); err != nil {
		logger.Warn("failed to close browser opener", slog.Any("error", err))
	}
}

func setup(cmd *cobra.Command) (*environment, error) {
	logger.Debug("creating browser opener...", slog.String("driver", config.Opener.Driver))
	o, err := opener.New(config.Opener.Driver,
		opener.WithLogger(logger.With("component", "opener")),
		opener.WithOutput(cmd.OutOrStdout()),
		opener.WithRodOptions(opener.RodOptions{
			Bin:        config.Opener.Rod.Bin,
			ControlURL: config.Opener.Rod.ControlURL,
			Headless:   config.Opener.Rod.Headless,
			UserMode:   config.Opener.Rod.UserMode,
		}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create browser opener")
	}

	out := console.New(cmd.OutOrStdout(), !config.Global.NoColor)

	logger.Debug("creating scan handler...")
	hdl, err := handler.NewScanHandler(
		handler.WithOpener(o),
		handler.WithTarget(target.New(config.Target.BaseURL, config.Target.EscapeValues)),
		handler.WithConsole(out),
		handler.WithContext(cmd.Context()),
		handler.WithLogger(logger.With("component", "scan-handler")))
	if err != nil {
		_ = o.Close()
		return nil, errors.Wrap(err, "failed to create scan handler")
	}

	return &environment{handler: hdl, opener: o, console: out}, nil
}
