package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/schedulebuddy/root"
	"github.com/worshipbuddy/schedulebuddy-cli/telemetry"
)

// These variables will be overridden by ldflags when building.
var (
	AppVersion    string
	PosthogAPIKey string
	SentryDsn     string
)

func init() {
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.AppVersion = AppVersion
}

func main() {
	telemetry.SentryInit(SentryDsn)
	defer telemetry.SentryFlush()

	log.Logger = log.Logger.Hook(telemetry.SentryHook{})

	telemetry.PosthogInit(PosthogAPIKey)
	defer telemetry.PosthogClose()

	// The installer invokes this once right after the binary lands.
	if len(os.Args) > 1 && os.Args[1] == "post-installation" {
		telemetry.PosthogCaptureEvent(AppVersion, telemetry.PostInstallationEvent)
		return
	}
	telemetry.PosthogCaptureEvent(AppVersion, telemetry.RunningEvent)

	root.Execute()
}
