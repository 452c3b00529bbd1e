package clargs

import (
	stderrors "errors"
	"io"
	"strconv"
)

// ExitCode is a process exit status, following the BSD sysexits conventions.
type ExitCode int

const (
	ExitOK          ExitCode = 0
	ExitFailure     ExitCode = 1  // General failure.
	ExitUsage       ExitCode = 64 // The command was used incorrectly.
	ExitDataErr     ExitCode = 65 // The input data was incorrect.
	ExitNoInput     ExitCode = 66 // An input file did not exist or was not readable.
	ExitNoUser      ExitCode = 67 // The user specified did not exist.
	ExitNoHost      ExitCode = 68 // The host specified did not exist.
	ExitUnavailable ExitCode = 69 // A service is unavailable.
	ExitSoftware    ExitCode = 70 // An internal software error has been detected.
	ExitOSErr       ExitCode = 71 // An operating system error has been detected.
	ExitOSFile      ExitCode = 72 // Some system file is missing or malformed.
	ExitCantCreat   ExitCode = 73 // A user output file cannot be created.
	ExitIOErr       ExitCode = 74 // An error occurred while doing I/O on some file.
	ExitTempFail    ExitCode = 75 // Temporary failure, the command can be retried.
	ExitProtocol    ExitCode = 76 // The remote system returned something not possible.
	ExitNoPerm      ExitCode = 77 // Insufficient permission to perform the operation.
	ExitConfig      ExitCode = 78 // Configuration error.
)

// Hook is run when its argument occurs on the command line,
// and returns the code the process should exit with.
type Hook func(reg *Registry) ExitCode

// Hooks maps argument names to the hook run when they occur.
type Hooks map[string]Hook

// ExitArgs looks for the first occurring exit argument, in schema order:
// the builtin usage and version arguments, or any argument having a hook.
// It runs the argument, printing help or version to w for builtins, and
// returns its exit code and true. It returns false if no exit argument occurred.
//
// A hook registered under a builtin name replaces the builtin behavior.
func (r *Registry) ExitArgs(w io.Writer, hooks Hooks) (ExitCode, bool) {
	for _, a := range r.Args {
		if a.Occurrences == 0 {
			continue
		}

		if hook, found := hooks[a.Name]; found && hook != nil {
			return hook(r), true
		}

		switch a.Name {
		case usageName:
			return PrintHelp(w, r), true
		case versionName:
			return PrintVersion(w, r), true
		}
	}

	return ExitOK, false
}

// ExitError is an error carrying the code the process should exit with.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(int(e.Code))
	}

	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeOf returns the code the process should exit with after an error:
// OK for nil, the code of an ExitError, USAGE for usage errors, and
// FAILURE for any other error.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	var usageErr *UsageError
	if stderrors.As(err, &usageErr) {
		return ExitUsage
	}

	return ExitFailure
}
