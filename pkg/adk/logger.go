package adk

import "github.com/user/pciscope/pkg/logging"

var DebugEnabled bool

// Debugf logs agent internals only when debug mode is on
func Debugf(format string, args ...interface{}) {
	if DebugEnabled {
		logging.Logger.Debugf(format, args...)
	}
}

// Infof logs always
func Infof(format string, args ...interface{}) {
	logging.Logger.Infof(format, args...)
}
