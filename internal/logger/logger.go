// Package logger provides verbose logging for distil.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show table sizes and timings of each
// analysis pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	// now is replaced in tests.
	now = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a [DEBUG] line in verbose mode.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Section prints a "=== name ===" header in verbose mode.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an [INFO] line in verbose mode.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a [WARN] line in verbose mode.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Timed starts a timer and returns a func that logs the elapsed time
// under name. Use as: defer logger.Timed("keywords")().
func Timed(name string) func() {
	if !IsVerbose() {
		return func() {}
	}
	start := now()
	return func() {
		Debug("%s took %s", name, now().Sub(start).Round(time.Microsecond))
	}
}
