// Package opener launches a browser on a URL. Every driver reports failures as a *LaunchError so callers
// can decide whether a failed launch matters to them.
package opener

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/qr-link-opener/internal/helpers"
)

// Supported drivers.
const (
	// DriverSystem uses the platform's default URL handler.
	DriverSystem = "system"
	// DriverRod drives a Chromium instance and opens each URL in a new tab.
	DriverRod = "rod"
	// DriverPrint only reports the URL it would have opened.
	DriverPrint = "print"
)

// Drivers lists the accepted driver names.
var Drivers = []string{DriverSystem, DriverRod, DriverPrint}

// Opener opens URLs in a browser.
type Opener interface {
	// Open blocks until the browser has accepted the URL or the launch failed.
	Open(ctx context.Context, url string) error
	// Close releases anything the driver started.
	Close() error
}

// LaunchError is returned when a browser could not be pointed at a URL.
type LaunchError struct {
	Driver string
	URL    string
	Cause  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s browser launch failed for %s: %v", e.Driver, e.URL, e.Cause)
}

func (e *LaunchError) Unwrap() error {
	return e.Cause
}

// Option configures the drivers created by New.
type Option func(*options)

type options struct {
	logger *slog.Logger
	output io.Writer
	rod    RodOptions
}

// RodOptions tunes the rod driver.
type RodOptions struct {
	// Bin is the browser executable. Empty lets rod find or download one.
	Bin string
	// ControlURL attaches to an already running browser instead of launching one.
	ControlURL string
	// Headless hides the launched browser window.
	Headless bool
	// UserMode launches the user's own Chrome profile.
	UserMode bool
}

// WithLogger sets the logger used by the driver.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where the print driver writes, and where the system driver forwards the launcher's
// own stdout and stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithRodOptions configures the rod driver.
func WithRodOptions(rod RodOptions) Option {
	return func(o *options) {
		o.rod = rod
	}
}

// New creates the opener for driver.
func New(driver string, opts ...Option) (Opener, error) {
	o := &options{
		logger: helpers.NewNoopLogger(),
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	driver = strings.ToLower(strings.TrimSpace(driver))
	logger := o.logger.With("driver", driver)
	switch driver {
	case DriverSystem, "":
		return newSystemOpener(logger, o.output), nil
	case DriverRod:
		return newRodOpener(logger, o.rod), nil
	case DriverPrint:
		return newPrintOpener(logger, o.output), nil
	default:
		return nil, fmt.Errorf("unsupported opener driver: %q (expected one of %s)", driver, strings.Join(Drivers, ", "))
	}
}
