// Package openertest provides an in-memory opener for tests.
package openertest

import (
	"context"
	"sync"

	"github.com/isometry/qr-link-opener/internal/opener"
)

// Recorder records every URL it is asked to open. When Err is set, Open fails with a *opener.LaunchError
// wrapping it, after recording the URL.
type Recorder struct {
	Err error

	mu     sync.Mutex
	urls   []string
	closed bool
}

func (r *Recorder) Open(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	if r.Err != nil {
		return &opener.LaunchError{Driver: "recorder", URL: url, Cause: r.Err}
	}
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// URLs returns the URLs opened so far, in order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
