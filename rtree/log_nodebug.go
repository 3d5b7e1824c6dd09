//go:build !debug

package rtree

// logDebugf is a no-op outside of -tags debug builds, so Build's tracing
// call costs nothing by default.
func logDebugf(format string, v ...interface{}) {}
