// Package logger provides verbose logging for the sentiment CLI.
// When verbose mode is enabled via the --verbose flag, stage headers,
// sizes and timings of the classification pipeline are printed to stderr.
// Every line carries the time elapsed since verbose mode was switched on,
// so a run reads as a timeline of its stages.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type state struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
	start   time.Time
	now     func() time.Time
}

var std = &state{out: os.Stderr, now: time.Now}

// SetVerbose enables or disables verbose logging. Enabling restarts the
// elapsed-time clock.
func SetVerbose(v bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = v
	if v {
		std.start = std.now()
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.out = w
}

// Debug prints sizes, counts and other detail.
func Debug(format string, args ...any) {
	std.printf("DEBUG", format, args...)
}

// Info prints a result worth seeing in a verbose run.
func Info(format string, args ...any) {
	std.printf("INFO", format, args...)
}

// Warn prints a recoverable problem, such as an optimiser that stopped
// before converging.
func Warn(format string, args ...any) {
	std.printf("WARN", format, args...)
}

// Section prints a stage header.
func Section(name string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if !std.verbose {
		return
	}
	fmt.Fprintf(std.out, "\n=== %s ===\n", name)
}

// Timed opens a section and returns a func that logs the stage duration.
//
//	done := logger.Timed("train logistic")
//	model, err := classifier.Train(...)
//	done()
func Timed(name string) func() {
	Section(name)
	start := time.Now()
	return func() {
		Debug("%s took %s", name, time.Since(start).Round(time.Millisecond))
	}
}

func (s *state) printf(level, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.verbose {
		return
	}
	elapsed := s.now().Sub(s.start).Seconds()
	fmt.Fprintf(s.out, "[%7.3fs] [%s] %s\n", elapsed, level, fmt.Sprintf(format, args...))
}
