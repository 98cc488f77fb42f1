package logger

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Debug function
func Debug(args ...interface{}) {
	log.Debug().Timestamp().Msg(fmt.Sprint(args...))
}

// Debugf function
func Debugf(format string, v ...interface{}) {
	log.Debug().Timestamp().Msgf(format, v...)
}

// Info function
func Info(args ...interface{}) {
	log.Info().Timestamp().Msg(fmt.Sprint(args...))
}

// Infof function
func Infof(format string, v ...interface{}) {
	log.Info().Timestamp().Msgf(format, v...)
}

// Warn function
func Warn(args ...interface{}) {
	log.Warn().Timestamp().Msg(fmt.Sprint(args...))
}

// Warnf function
func Warnf(format string, v ...interface{}) {
	log.Warn().Timestamp().Msgf(format, v...)
}

// Error function
func Error(args ...interface{}) {
	log.Error().Timestamp().Msg(fmt.Sprint(args...))
}

// Errorf function
func Errorf(format string, v ...interface{}) {
	log.Error().Timestamp().Msgf(format, v...)
}

// Errors function to log errors package
func Errors(err error) {
	log.Error().Timestamp().Msg(err.Error())
}

// Fatal function
func Fatal(args ...interface{}) {
	log.Fatal().Timestamp().Msg(fmt.Sprint(args...))
}

// Printf standard printf with debug mode validation
func Printf(format string, v ...interface{}) {
	if DebugMode {
		fmt.Printf(format, v...)
	}
}

// Println standard println with debug mode validation
func Println(v ...interface{}) {
	if DebugMode {
		fmt.Println(v...)
	}
}
