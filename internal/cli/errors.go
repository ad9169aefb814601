package cli

import "errors"

// ErrUsage indicates invalid flags, arguments or configuration.
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsage) {
		return 2
	}

	return 1
}
