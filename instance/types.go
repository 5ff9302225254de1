package instance

import "errors"

// Sentinel errors raised while scanning the instance file. A problem.New
// validation failure (malformed vehicle/call data) is returned unwrapped
// from Parse, since it already pins down the cause precisely.
var (
	// ErrUnexpectedEOF indicates the file ended before a required section
	// was fully read.
	ErrUnexpectedEOF = errors.New("instance: unexpected end of file")

	// ErrMalformedRow indicates a data row did not parse as the expected
	// number of comma-separated integers.
	ErrMalformedRow = errors.New("instance: malformed row")
)
