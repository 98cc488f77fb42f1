package root

import (
	"github.com/spf13/cobra"

	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(*cobra.Command, []string) {
			printer.Infof("ScheduleBuddy CLI %s\n", AppVersion)
		},
	}
}
