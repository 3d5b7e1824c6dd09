//go:build debug

package rtree

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[anime/rtree DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the package is built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
