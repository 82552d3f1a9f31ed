package cmd

import (
	"time"

	"github.com/isometry/qr-link-opener/internal/config"
	"github.com/isometry/qr-link-opener/internal/helpers"
)

var svcEnvMapString = map[*string]boundEnvVar[string]{
	&config.Service.Addr: {
		Name:        "service-host-addr",
		Description: "The address to listen for scans on",
		Short:       helpers.Ptr("H"),
	},
	&config.Service.Port: {
		Name:        "service-host-port",
		Description: "The port to listen for scans on",
		Short:       helpers.Ptr("p"),
	},
}

var svcEnvMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Service.ReadTimeout: {
		Name:        "service-read-timeout",
		Description: "The timeout for reading a scan request. Browser launches are never timed out",
		Short:       helpers.Ptr("t"),
	},
}
