// Package validation decides whether a scan carries enough information to be redirected.
package validation

import (
	"errors"

	"github.com/isometry/qr-link-opener/internal/models"
)

var (
	// ErrMissingCompany is returned when the scan has no company.
	ErrMissingCompany = errors.New("missing company")
	// ErrMissingOrder is returned when the scan has no order.
	ErrMissingOrder = errors.New("missing order")
)

// ValidateScan returns nil when both the company and the order are non-empty.
// Otherwise it returns every missing field joined into a single error.
func ValidateScan(scan models.Scan) error {
	var errs []error
	if scan.Company == "" {
		errs = append(errs, ErrMissingCompany)
	}
	if scan.Order == "" {
		errs = append(errs, ErrMissingOrder)
	}
	return errors.Join(errs...)
}
