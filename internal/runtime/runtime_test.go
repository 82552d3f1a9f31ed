package runtime_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/isometry/qr-link-opener/internal/handler"
	"github.com/isometry/qr-link-opener/internal/opener/openertest"
	"github.com/isometry/qr-link-opener/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	Name           string
	Method         string
	Target         string
	ExpectedStatus int
	ExpectedBody   string
	ExpectedURLs   []string
}

func setupRuntime(t *testing.T) (*runtime.Runtime, *openertest.Recorder) {
	t.Helper()
	recorder := &openertest.Recorder{}
	hdl, err := handler.NewScanHandler(handler.WithOpener(recorder))
	require.NoError(t, err)
	return runtime.NewRuntime(hdl), recorder
}

func TestRuntime_ServeHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name:           "scan",
			Method:         http.MethodGet,
			Target:         "/ship?company=Acme&order=123",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
			ExpectedURLs:   []string{"https://machineschedule.netlify.app/ship?company=Acme&order=123"},
		},
		{
			Name:           "scan_without_order",
			Method:         http.MethodGet,
			Target:         "/ship?company=Acme",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
		},
		{
			Name:           "path_is_ignored",
			Method:         http.MethodGet,
			Target:         "/any/other/path?company=Acme&order=123",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
			ExpectedURLs:   []string{"https://machineschedule.netlify.app/ship?company=Acme&order=123"},
		},
		{
			Name:           "unclean_path_is_not_redirected",
			Method:         http.MethodGet,
			Target:         "//ship/../x?company=Acme&order=1",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
			ExpectedURLs:   []string{"https://machineschedule.netlify.app/ship?company=Acme&order=1"},
		},
		{
			Name:           "root_without_query",
			Method:         http.MethodGet,
			Target:         "/",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
		},
		{
			Name:           "encoded_ampersand_inserted_raw",
			Method:         http.MethodGet,
			Target:         "/ship?company=A%26B&order=9",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "Opened.",
			ExpectedURLs:   []string{"https://machineschedule.netlify.app/ship?company=A&B&order=9"},
		},
		{
			Name:           "post_not_implemented",
			Method:         http.MethodPost,
			Target:         "/ship?company=Acme&order=123",
			ExpectedStatus: http.StatusNotImplemented,
			ExpectedBody:   "Unsupported method ('POST')",
		},
		{
			Name:           "head_not_implemented",
			Method:         http.MethodHead,
			Target:         "/ship?company=Acme&order=123",
			ExpectedStatus: http.StatusNotImplemented,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rtm, recorder := setupRuntime(t)
			req := httptest.NewRequest(tc.Method, tc.Target, nil)
			rr := httptest.NewRecorder()

			rtm.ServeHTTP(rr, req)

			assert.Equal(t, tc.ExpectedStatus, rr.Code)
			if tc.ExpectedBody != "" {
				assert.Equal(t, tc.ExpectedBody, rr.Body.String())
			}
			if tc.ExpectedURLs == nil {
				assert.Empty(t, recorder.URLs())
			} else {
				assert.Equal(t, tc.ExpectedURLs, recorder.URLs())
			}
		})
	}
}

func TestRuntime_ServeHTTP_Concurrent(t *testing.T) {
	rtm, recorder := setupRuntime(t)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			rtm.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?company=Acme&order=1", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		}()
	}
	wg.Wait()

	assert.Len(t, recorder.URLs(), n)
}
