package logging

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

var forceDebug atomic.Bool

// SetDebug turns debug output on regardless of TODO_DEBUG
func SetDebug(enabled bool) {
	forceDebug.Store(enabled)
}

// DebugEnabled returns true if debug mode is enabled via SetDebug or the TODO_DEBUG environment variable
func DebugEnabled() bool {
	return forceDebug.Load() || os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Component returns a logger whose lines are prefixed with "[NAME]: ".
func Component(name string) *log.Logger {
	return log.New(log.Writer(), "["+name+"]: ", log.LstdFlags)
}
