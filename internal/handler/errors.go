package handler

import "fmt"

type NoOpenerError struct{}

func (m *NoOpenerError) Error() string {
	return "no browser opener configured"
}

// IncompleteScanError is returned when a scan lacks the company or the order.
type IncompleteScanError struct {
	Cause error
}

func (m *IncompleteScanError) Error() string {
	return fmt.Sprintf("incomplete scan: %v", m.Cause)
}

func (m *IncompleteScanError) Unwrap() error {
	return m.Cause
}
