// Package handler turns a scan request into a browser launch.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/isometry/qr-link-opener/internal/console"
	"github.com/isometry/qr-link-opener/internal/helpers"
	"github.com/isometry/qr-link-opener/internal/models"
	"github.com/isometry/qr-link-opener/internal/opener"
	"github.com/isometry/qr-link-opener/internal/query"
	"github.com/isometry/qr-link-opener/internal/target"
	"github.com/isometry/qr-link-opener/internal/validation"
)

const (
	// CompanyParam is the query parameter carrying the company.
	CompanyParam = "company"
	// OrderParam is the query parameter carrying the order.
	OrderParam = "order"

	// OpenedBody is returned for every scan request, whether a browser was opened or not.
	OpenedBody = "Opened."
)

type Option func(*Handler)

type Handler struct {
	ctx     context.Context
	logger  *slog.Logger
	opener  opener.Opener
	target  *target.Template
	console *console.Console
}

// NewScanHandler creates a Handler. An opener is mandatory; the target defaults to the shipping page
// and console output is discarded unless WithConsole is given.
func NewScanHandler(options ...Option) (*Handler, error) {
	_inst := &Handler{
		logger: helpers.NewNoopLogger(),
	}
	for _, opt := range options {
		opt(_inst)
	}

	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if _inst.opener == nil {
		return nil, &NoOpenerError{}
	}
	if _inst.target == nil {
		_inst.target = target.New(target.DefaultBaseURL, false)
	}
	if _inst.console == nil {
		_inst.console = console.New(io.Discard, false)
	}
	return _inst, nil
}

// OpenedResponse is the response sent back to the scanner.
func OpenedResponse() models.Response {
	return models.Response{Body: OpenedBody, StatusCode: http.StatusOK}
}

// ScanFromRequest extracts the company and order of a request. Missing values are left empty.
func ScanFromRequest(req models.Request) models.Scan {
	params := query.Parse(req.RawQuery)
	return models.Scan{
		ID:      uuid.NewString(),
		Company: params.Get(CompanyParam),
		Order:   params.Get(OrderParam),
	}
}

// Process handles one scan request. The response never depends on the outcome: incomplete scans are
// ignored and launch failures are only logged.
func (h *Handler) Process(req models.Request) models.Response {
	scan := ScanFromRequest(req)
	logger := h.logger.With(slog.Any("scan", scan))
	logger.Info("processing scan...", slog.String("path", req.Path))

	url, err := h.Launch(scan)
	var incompleteErr *IncompleteScanError
	var launchErr *opener.LaunchError
	switch {
	case err == nil:
		logger.Info("browser opened", slog.String("url", url))
	case errors.As(err, &incompleteErr):
		logger.Debug("ignoring incomplete scan", slog.Any("error", err))
	case errors.As(err, &launchErr):
		logger.Error("failed to open browser", slog.Any("error", err))
		helpers.LaunchFailureHint.Do(func() {
			logger.Warn("browser launches are failing; on hosts without a display use the 'print' opener")
		})
	default:
		logger.Error("unexpected scan failure", slog.Any("error", err))
	}
	return OpenedResponse()
}

// Launch builds the destination URL of a complete scan and opens it. It returns an *IncompleteScanError
// when a value is missing, and the opener's *opener.LaunchError when the browser could not be reached.
func (h *Handler) Launch(scan models.Scan) (string, error) {
	if err := validation.ValidateScan(scan); err != nil {
		return "", &IncompleteScanError{Cause: err}
	}

	url := h.target.Build(scan.Company, scan.Order)
	h.console.Opening(url)
	if err := h.opener.Open(h.ctx, url); err != nil {
		return url, err
	}
	return url, nil
}
