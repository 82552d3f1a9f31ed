package helpers

import (
	"time"

	"golang.org/x/time/rate"
)

// LaunchFailureHint throttles the advice logged when the browser cannot be launched.
var LaunchFailureHint = onceAMinute()

func onceAMinute() *rate.Sometimes {
	return &rate.Sometimes{
		Interval: time.Minute,
	}
}
