// Package runtime exposes the scan handler over HTTP.
package runtime

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/isometry/qr-link-opener/internal/handler"
	"github.com/isometry/qr-link-opener/internal/helpers"
	"github.com/isometry/qr-link-opener/internal/models"
)

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// Runtime routes every GET request, whatever its path, to the scan handler. Requests are handled one
// at a time.
type Runtime struct {
	*handler.Handler
	logger *slog.Logger
	router *mux.Router
	mu     sync.Mutex
}

// NewRuntime creates a new runtime instance
func NewRuntime(h *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{Handler: h}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}

	router := mux.NewRouter()
	// the path is never interpreted, so never redirect to a cleaned one
	router.SkipClean(true)
	router.PathPrefix("/").Methods(http.MethodGet).HandlerFunc(_inst.serveScan)
	router.MethodNotAllowedHandler = http.HandlerFunc(_inst.rejectMethod)
	_inst.router = router
	return _inst
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(resp, req)
}

func (r *Runtime) serveScan(resp http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.String("path", req.URL.Path))
	result := r.Handler.Process(models.Request{
		Path:     req.URL.Path,
		RawQuery: req.URL.RawQuery,
	})
	helpers.RespondHTTP(result, resp)
}

func (r *Runtime) rejectMethod(resp http.ResponseWriter, req *http.Request) {
	r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not implemented", slog.String("method", req.Method))
	helpers.RespondHTTP(models.Response{
		Body:       fmt.Sprintf("Unsupported method ('%s')", req.Method),
		StatusCode: http.StatusNotImplemented,
	}, resp)
}
