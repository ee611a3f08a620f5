// Package policy models the allow-list that leash resolves aliases through:
// AclEntry, Policy, and their lookup operations.
package policy

import "errors"

// Sentinel errors, one per member of the error taxonomy. Call sites wrap
// these with fmt.Errorf("...: %w", ErrX); callers compare with errors.Is.
var (
	ErrIO               = errors.New("io error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidData      = errors.New("invalid data")
	ErrBrokenPipe       = errors.New("broken pipe")
	ErrParse            = errors.New("parse error")
)
