package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Formatting pipeline codes. These never escape the formatting core:
	// the translator and formatters log them and fall back to a default.
	CodeUnrecognizedFormula Code = "UNRECOGNIZED_FORMULA"
	CodeMissingSubConfig    Code = "MISSING_SUB_CONFIG"
	CodeMissingField        Code = "MISSING_FIELD"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsFallback reports whether the code describes a recoverable formatting
// condition that is answered with fallback text instead of a failure
func (c Code) IsFallback() bool {
	switch c {
	case CodeUnrecognizedFormula, CodeMissingSubConfig, CodeMissingField:
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status the CLI uses for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeFailedPrecondition:
		return 2
	case CodeNotFound:
		return 3
	case CodeUnavailable, CodeCanceled:
		return 4
	default:
		return 1
	}
}
