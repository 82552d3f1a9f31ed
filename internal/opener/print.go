package opener

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type printOpener struct {
	logger *slog.Logger
	output io.Writer
}

func newPrintOpener(logger *slog.Logger, output io.Writer) *printOpener {
	return &printOpener{logger: logger, output: output}
}

func (o *printOpener) Open(_ context.Context, url string) error {
	o.logger.Debug("browser launch skipped", slog.String("url", url))
	if _, err := fmt.Fprintf(o.output, "Would open: %s\n", url); err != nil {
		return &LaunchError{Driver: DriverPrint, URL: url, Cause: err}
	}
	return nil
}

func (o *printOpener) Close() error {
	return nil
}
