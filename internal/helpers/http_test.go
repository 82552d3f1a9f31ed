package helpers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isometry/qr-link-opener/internal/helpers"
	"github.com/isometry/qr-link-opener/internal/models"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	Name     string
	Response models.Response
	Expected expectedResponse
}

type expectedResponse struct {
	StatusCode int
	Body       string
	Header     string
}

func TestRespondHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name: "opened_response",
			Response: models.Response{
				StatusCode: http.StatusOK,
				Body:       "Opened.",
			},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       "Opened.",
			},
		},
		{
			Name: "with_headers",
			Response: models.Response{
				StatusCode: http.StatusNotImplemented,
				Body:       "Unsupported method ('POST')",
				Headers:    map[string]string{"Content-Type": "text/plain"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusNotImplemented,
				Body:       "Unsupported method ('POST')",
				Header:     "text/plain",
			},
		},
		{
			Name:     "with_empty_response",
			Response: models.Response{},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			helpers.RespondHTTP(tc.Response, rw)

			assert.Equal(t, tc.Expected.StatusCode, rw.Code)
			assert.Equal(t, tc.Expected.Body, rw.Body.String())
			if tc.Expected.Header != "" {
				assert.Equal(t, tc.Expected.Header, rw.Header().Get("Content-Type"))
			}
		})
	}
}
