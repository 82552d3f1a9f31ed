package opener_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/isometry/qr-link-opener/internal/opener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://machineschedule.netlify.app/ship?company=Acme&order=123"

func TestNew(t *testing.T) {
	testCases := []struct {
		Name        string
		Driver      string
		ExpectError bool
	}{
		{
			Name:   "default_driver",
			Driver: "",
		},
		{
			Name:   "system_driver",
			Driver: opener.DriverSystem,
		},
		{
			Name:   "rod_driver",
			Driver: opener.DriverRod,
		},
		{
			Name:   "print_driver_mixed_case",
			Driver: " Print ",
		},
		{
			Name:        "unknown_driver",
			Driver:      "lynx",
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			o, err := opener.New(tc.Driver, opener.WithOutput(&bytes.Buffer{}))
			if tc.ExpectError {
				assert.Error(t, err)
				assert.Nil(t, o)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, o.Close())
		})
	}
}

func TestPrintOpener_Open(t *testing.T) {
	var out bytes.Buffer
	o, err := opener.New(opener.DriverPrint, opener.WithOutput(&out))
	require.NoError(t, err)

	require.NoError(t, o.Open(context.Background(), testURL))
	require.NoError(t, o.Open(context.Background(), testURL))

	assert.Equal(t, "Would open: "+testURL+"\nWould open: "+testURL+"\n", out.String())
}

func TestSystemOpener_CancelledContext(t *testing.T) {
	o, err := opener.New(opener.DriverSystem, opener.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = o.Open(ctx, testURL)
	var launchErr *opener.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, opener.DriverSystem, launchErr.Driver)
	assert.Equal(t, testURL, launchErr.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRodOpener_UnreachableControlURL(t *testing.T) {
	o, err := opener.New(opener.DriverRod, opener.WithRodOptions(opener.RodOptions{
		ControlURL: "ws://127.0.0.1:1/devtools/browser/missing",
	}))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, o.Close())
	}()

	err = o.Open(context.Background(), testURL)
	var launchErr *opener.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, opener.DriverRod, launchErr.Driver)
}

func TestLaunchError(t *testing.T) {
	cause := errors.New("xdg-open: not found")
	err := &opener.LaunchError{Driver: opener.DriverSystem, URL: testURL, Cause: cause}

	assert.Equal(t, "system browser launch failed for "+testURL+": xdg-open: not found", err.Error())
	assert.ErrorIs(t, err, cause)
}
