package logger

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	DefaultTimeFormat           = "15:04:05.000"
	DefaultCallerSkipFrameCount = 3 // set to 3 because logger wrapped in logger.go

	NoColor   = true
	UseCaller = false // for developer, if you want to expose line of code of caller
	flagDebug = "debug"

	logBufferCap = 64 * 1024
)

var (
	logBuffer = newBoundedBuffer(logBufferCap)

	// DebugMode flag for determining debug mode
	DebugMode = false
)

func init() {
	zerolog.TimeFieldFormat = DefaultTimeFormat
	zerolog.CallerSkipFrameCount = DefaultCallerSkipFrameCount

	consoleWriter := zerolog.ConsoleWriter{
		Out:        logBuffer,
		NoColor:    NoColor,
		TimeFormat: DefaultTimeFormat,
	}

	lgr := zerolog.New(zerolog.MultiLevelWriter(consoleWriter))
	if UseCaller {
		lgr = lgr.With().Caller().Logger()
	}

	log.Logger = lgr
}

// PrintLogs print all stacked log
func PrintLogs() {
	if DebugMode {
		logs := logBuffer.String()
		if len(logs) > 0 {
			fmt.Println("\n----- Log -----")
			fmt.Println(logs)
		}
	}
}

// SetDebugMode Allow particular logger/message to be printed
// This function will extract flag --debug from command
func SetDebugMode(cmd *cobra.Command) {
	val, err := cmd.Flags().GetBool(flagDebug)
	if err == nil {
		DebugMode = val
	}
}

// AddLogFlag set flag --debug
func AddLogFlag(cmd ...*cobra.Command) {
	for _, c := range cmd {
		c.PersistentFlags().Bool(flagDebug, false, "Run in debug mode")
	}
}
