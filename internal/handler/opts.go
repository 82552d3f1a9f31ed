package handler

import (
	"context"
	"log/slog"

	"github.com/isometry/qr-link-opener/internal/console"
	"github.com/isometry/qr-link-opener/internal/opener"
	"github.com/isometry/qr-link-opener/internal/target"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithContext sets the context browser launches run under. It outlives individual requests.
func WithContext(ctx context.Context) Option {
	return func(h *Handler) {
		h.ctx = ctx
	}
}

// WithOpener sets the browser opener.
func WithOpener(o opener.Opener) Option {
	return func(h *Handler) {
		h.opener = o
	}
}

// WithTarget sets the destination URL template.
func WithTarget(t *target.Template) Option {
	return func(h *Handler) {
		h.target = t
	}
}

// WithConsole sets where the 'Opening:' diagnostics are printed.
func WithConsole(c *console.Console) Option {
	return func(h *Handler) {
		h.console = c
	}
}
