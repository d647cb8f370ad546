// Package display provides terminal rendering helpers: ANSI styling and an
// aligned text table.
//
// Styling respects the NO_COLOR environment variable (https://no-color.org/)
// and is disabled automatically when stdout is not a terminal, so piped
// output stays plain.
package display

import "os"

// ANSI escape codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

var enabled = shouldEnable()

func shouldEnable() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// FORCE_COLOR wins over terminal detection, mainly for tests.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetEnabled overrides the auto-detected color state.
func SetEnabled(b bool) { enabled = b }

// Enabled reports whether color output is currently active.
func Enabled() bool { return enabled }

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return wrap(bold, text) }

// Dim returns text rendered dim/faint; used for passed prayers and
// unreachable cells.
func Dim(text string) string { return wrap(dim, text) }

// Yellow returns text rendered in yellow; used for event callouts.
func Yellow(text string) string { return wrap(yellow, text) }

// Accent returns text in the accent style (bold cyan); used for the next
// prayer and the today row.
func Accent(text string) string {
	if !enabled {
		return text
	}
	return bold + cyan + text + reset
}
