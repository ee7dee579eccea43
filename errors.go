package draft

import "errors"

// Sentinel errors wrapped by every constructor and validated setter in the
// package. Match them with errors.Is; the wrapping message names the field
// and the offending value.
var (
	// ErrNilValue reports a required reference or name that was absent.
	ErrNilValue = errors.New("draft: required value missing")

	// ErrOutOfRange reports a numeric or cardinality domain violation.
	ErrOutOfRange = errors.New("draft: value out of range")
)
