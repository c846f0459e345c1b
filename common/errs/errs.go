package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or option is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Conflict is returned when the requested change conflicts with the current state.
	Conflict = ErrorKind("Conflict")

	// Closed is returned when a resource is already closed.
	Closed = ErrorKind("Closed")

	// Timeout is returned when an operation does not finish in time.
	Timeout = ErrorKind("Timeout")

	// SomethingWentWrong is returned when an unexpected internal state is reached.
	SomethingWentWrong = ErrorKind("Something Went Wrong")

	OverflowUint64  = ErrorKind("overflow uint64")
	OverflowUint128 = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
