//go:build !debug

package match

// logDebugf is a no-op outside of -tags debug builds, so Find's tracing
// call costs nothing by default.
func logDebugf(format string, v ...interface{}) {}
