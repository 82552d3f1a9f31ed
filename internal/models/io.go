// Package models provides the core data structures exchanged between the listener and the scan handler.
package models

// Request represents an incoming scan request. Only the raw query string is consulted.
type Request struct {
	Path     string
	RawQuery string
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
