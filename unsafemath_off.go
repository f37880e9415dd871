//go:build !fixnumcheck

package fixnum

// debugChecks arms overflow panics on the unchecked operators.
// Without the fixnumcheck build tag, out-of-range fast-path results
// wrap silently.
const debugChecks = false
