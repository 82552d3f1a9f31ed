package helpers

import (
	"io"
	"net/http"

	"github.com/isometry/qr-link-opener/internal/models"
)

// RespondHTTP writes response to rw. Headers are applied before the status line; a zero status code
// is sent as 200.
func RespondHTTP(response models.Response, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	_, _ = io.WriteString(rw, response.Body)
}
