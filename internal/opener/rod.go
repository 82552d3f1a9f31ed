package opener

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pkg/errors"
)

// rodOpener keeps a single browser connection and opens one tab per URL.
type rodOpener struct {
	logger *slog.Logger
	opts   RodOptions

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

func newRodOpener(logger *slog.Logger, opts RodOptions) *rodOpener {
	return &rodOpener{logger: logger, opts: opts}
}

func (o *rodOpener) Open(ctx context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.connect()
	if err != nil {
		return &LaunchError{Driver: DriverRod, URL: url, Cause: err}
	}

	o.logger.Debug("opening new tab...", slog.String("url", url))
	if _, err = b.Context(ctx).Page(proto.TargetCreateTarget{URL: url}); err != nil {
		if ctx.Err() == nil {
			// the browser may have been closed by the user; reconnect on the next scan
			_ = o.release()
		}
		return &LaunchError{Driver: DriverRod, URL: url, Cause: errors.Wrap(err, "failed to open tab")}
	}
	return nil
}

func (o *rodOpener) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.release()
}

// connect returns the current browser connection, launching a browser first if needed.
// The caller must hold o.mu.
func (o *rodOpener) connect() (*rod.Browser, error) {
	if o.browser != nil {
		return o.browser, nil
	}

	controlURL := o.opts.ControlURL
	if controlURL == "" {
		l := launcher.New()
		if o.opts.UserMode {
			l = launcher.NewUserMode()
		}
		if o.opts.Bin != "" {
			l = l.Bin(o.opts.Bin)
		}
		l = l.Headless(o.opts.Headless)

		o.logger.Info("launching browser...", slog.Bool("headless", o.opts.Headless), slog.Bool("userMode", o.opts.UserMode))
		u, err := l.Launch()
		if err != nil {
			return nil, errors.Wrap(err, "failed to launch browser")
		}
		controlURL = u
		o.launched = l
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		if o.launched != nil {
			o.launched.Kill()
			o.launched = nil
		}
		return nil, errors.Wrapf(err, "failed to connect to browser at %s", controlURL)
	}
	o.logger.Debug("connected to browser", slog.String("controlURL", controlURL))
	o.browser = b
	return b, nil
}

// release drops the browser connection. A browser this opener launched is shut down; one it merely
// attached to is left running. The caller must hold o.mu.
func (o *rodOpener) release() error {
	if o.browser == nil {
		return nil
	}
	var err error
	if o.launched != nil && !o.opts.UserMode {
		err = o.browser.Close()
		o.launched.Cleanup()
	}
	o.browser = nil
	o.launched = nil
	return err
}
