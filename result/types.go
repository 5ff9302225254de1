package result

import "errors"

// ErrMalformedWire indicates the wire string did not parse as a
// comma-separated integer sequence with exactly one "0" separator per real
// vehicle.
var ErrMalformedWire = errors.New("result: malformed wire format")
