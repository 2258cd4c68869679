package main

import (
	"errors"

	"github.com/katalvlaran/sociograph/config"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, unknown node, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config, no input)
	ExitDataError   = 3 // Data error (input file malformed or unreadable)
)

// errData marks failures caused by the input graph file.
var errData = errors.New("data error")

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrConfig):
		return ExitConfigError
	case errors.Is(err, errData):
		return ExitDataError
	default:
		return ExitError
	}
}
