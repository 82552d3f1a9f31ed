package models

import "log/slog"

// Scan holds the values carried by a single QR-code scan.
type Scan struct {
	// ID correlates the log lines of one scan. It is never stored.
	ID      string
	Company string
	Order   string
}

// LogValue groups the scan attributes, omitting the values that were not provided.
func (s Scan) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	if s.ID != "" {
		attrs = append(attrs, slog.String("id", s.ID))
	}
	if s.Company != "" {
		attrs = append(attrs, slog.String("company", s.Company))
	}
	if s.Order != "" {
		attrs = append(attrs, slog.String("order", s.Order))
	}
	return slog.GroupValue(attrs...)
}
