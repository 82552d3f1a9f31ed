package opener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/browser"
)

type systemOpener struct {
	logger *slog.Logger
}

func newSystemOpener(logger *slog.Logger, output io.Writer) *systemOpener {
	browser.Stdout = output
	browser.Stderr = output
	return &systemOpener{logger: logger}
}

func (o *systemOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return &LaunchError{Driver: DriverSystem, URL: url, Cause: err}
	}
	o.logger.Debug("handing URL to the system browser...", slog.String("url", url))
	if err := browser.OpenURL(url); err != nil {
		return &LaunchError{Driver: DriverSystem, URL: url, Cause: err}
	}
	return nil
}

func (o *systemOpener) Close() error {
	return nil
}
