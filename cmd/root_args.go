package cmd

import (
	"github.com/isometry/qr-link-opener/internal/config"
	"github.com/isometry/qr-link-opener/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Opener.Driver: {
		Name:        "opener",
		Description: "The browser opener driver. Supported values are 'system', 'rod' and 'print'",
		Short:       helpers.Ptr("o"),
	},
	&config.Opener.Rod.Bin: {
		Name:        "opener-rod-bin",
		Description: "The browser executable launched by the 'rod' opener. If not specified, rod locates or downloads one",
	},
	&config.Opener.Rod.ControlURL: {
		Name:        "opener-rod-control-url",
		Description: "The DevTools websocket URL of a running browser for the 'rod' opener to attach to instead of launching one",
	},
	&config.Target.BaseURL: {
		Name:        "target-base-url",
		Description: "The page scans are redirected to. The company and order are appended as query parameters",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Global.NoColor: {
		Name:        "no-color",
		Description: "Disable coloured console output",
		Env:         helpers.Ptr("NO_COLOR"),
	},
	&config.Target.EscapeValues: {
		Name:        "target-escape-values",
		Description: "Query-escape the company and order before inserting them into the target URL",
	},
	&config.Opener.Rod.Headless: {
		Name:        "opener-rod-headless",
		Description: "Launch the 'rod' opener's browser without a window",
	},
	&config.Opener.Rod.UserMode: {
		Name:        "opener-rod-user-mode",
		Description: "Launch the user's own Chrome profile with the 'rod' opener",
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}
