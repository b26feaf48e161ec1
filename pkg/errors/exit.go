package errors

// Process exit codes. Configuration mistakes and data mistakes get distinct
// codes so callers can tell them apart.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUnsupported = 2
	ExitConversion  = 3
)

// ExitCode maps an error to the process exit code reported for it.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrUnsupported:
		return ExitUnsupported
	case ErrConversion:
		return ExitConversion
	default:
		return ExitFailure
	}
}
