package target_test

import (
	"testing"

	"github.com/isometry/qr-link-opener/internal/target"
	"github.com/stretchr/testify/assert"
)

func TestTemplate_Build(t *testing.T) {
	testCases := []struct {
		Name         string
		BaseURL      string
		EscapeValues bool
		Company      string
		Order        string
		Expected     string
	}{
		{
			Name:     "default_base",
			Company:  "Acme",
			Order:    "123",
			Expected: "https://machineschedule.netlify.app/ship?company=Acme&order=123",
		},
		{
			Name:     "raw_space",
			Company:  "Acme Corp",
			Order:    "123",
			Expected: "https://machineschedule.netlify.app/ship?company=Acme Corp&order=123",
		},
		{
			Name:     "raw_ampersand_is_inserted_verbatim",
			Company:  "A&B",
			Order:    "9",
			Expected: "https://machineschedule.netlify.app/ship?company=A&B&order=9",
		},
		{
			Name:         "escaped_ampersand",
			EscapeValues: true,
			Company:      "A&B",
			Order:        "9",
			Expected:     "https://machineschedule.netlify.app/ship?company=A%26B&order=9",
		},
		{
			Name:     "custom_base",
			BaseURL:  " http://localhost:8888/ship ",
			Company:  "JR",
			Order:    "25",
			Expected: "http://localhost:8888/ship?company=JR&order=25",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, target.New(tc.BaseURL, tc.EscapeValues).Build(tc.Company, tc.Order))
		})
	}
}
