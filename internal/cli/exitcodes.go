package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/yaklabco/typscii/internal/configloader"
	"github.com/yaklabco/typscii/pkg/fsutil"
	"github.com/yaklabco/typscii/pkg/pipeline"
	"github.com/yaklabco/typscii/pkg/render"
)

// Exit codes for typscii.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitIssuesFound indicates check --strict found diagnostics.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates invalid configuration or input data.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrIssuesFound signals that check --strict found diagnostics.
	// The diagnostics have already been reported.
	ErrIssuesFound = errors.New("issues found")

	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an error returned by a command to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig),
		errors.Is(err, render.ErrInvalidConfig),
		errors.Is(err, fsutil.ErrInvalidUTF8),
		errors.Is(err, fsutil.ErrBinaryInput):
		return ExitConfigError
	case errors.Is(err, pipeline.ErrReadFailure),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, errWriteOutput):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// isSilent reports errors that only carry an exit status.
func isSilent(err error) bool {
	return errors.Is(err, ErrIssuesFound)
}
