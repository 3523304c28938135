package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode represents different output modes
type OutputMode int

const (
	OutputModePlain OutputMode = iota
	OutputModeTUI
)

// String returns the string representation of OutputMode
func (o OutputMode) String() string {
	switch o {
	case OutputModePlain:
		return "plain"
	case OutputModeTUI:
		return "tui"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsCI returns true if running in a CI environment
func IsCI() bool {
	ciEnvVars := []string{
		"CI", "CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI",
		"TRAVIS", "JENKINS_URL", "BUILDKITE",
	}
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// IsDebugMode returns true if debug mode is enabled
func IsDebugMode() bool {
	debug := os.Getenv("DEBUG")
	return debug != "" && debug != "0" && debug != "false"
}

// GetOutputMode decides between the live TUI and plain line output.
// TINYBOMBE_PLAIN or NO_TUI force plain output, FORCE_TUI forces the TUI.
func GetOutputMode() OutputMode {
	return outputMode(IsTerminal(os.Stdout) && IsTerminal(os.Stdin))
}

func outputMode(tty bool) OutputMode {
	if os.Getenv("TINYBOMBE_PLAIN") != "" || os.Getenv("NO_TUI") != "" {
		return OutputModePlain
	}
	if os.Getenv("FORCE_TUI") != "" {
		return OutputModeTUI
	}
	if IsCI() || !tty {
		return OutputModePlain
	}
	return OutputModeTUI
}
