//go:build debug

package match

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[anime/match DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the package is built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
