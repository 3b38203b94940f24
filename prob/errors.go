// File: errors.go
// Role: sentinel errors for the prob package.
//
// Error policy (mirrors core/builder/matrix): only sentinel package vars are
// exposed; callers branch with errors.Is. Context is attached with %w at the
// call site, never baked into the sentinel message.
package prob

import "errors"

var (
	// ErrDomain indicates an arithmetic or construction operation left the
	// valid-probability domain: division by a zero-supporting value, bounds
	// outside [0,1], lo > hi, or mismatched PBox breakpoint slices.
	ErrDomain = errors.New("prob: domain error")
)
