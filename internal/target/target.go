// Package target builds the destination URL a scan is redirected to.
package target

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the shipping page the scanned company and order are handed to.
const DefaultBaseURL = "https://machineschedule.netlify.app/ship"

// Template renders `<BaseURL>?company=<company>&order=<order>`.
//
// Values are substituted verbatim unless EscapeValues is set: a decoded value containing '&' or '='
// therefore leaks into the destination query string. Downstream pages rely on that historical
// behaviour, so escaping stays opt-in.
type Template struct {
	BaseURL      string
	EscapeValues bool
}

// New returns a Template for baseURL, falling back to DefaultBaseURL when it is blank.
func New(baseURL string, escapeValues bool) *Template {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Template{BaseURL: baseURL, EscapeValues: escapeValues}
}

// Build returns the destination URL for the given company and order.
func (t *Template) Build(company, order string) string {
	if t.EscapeValues {
		company = url.QueryEscape(company)
		order = url.QueryEscape(order)
	}
	return fmt.Sprintf("%s?company=%s&order=%s", t.BaseURL, company, order)
}
