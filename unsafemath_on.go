//go:build fixnumcheck

package fixnum

// debugChecks arms overflow panics on the unchecked operators.
// Build with -tags fixnumcheck to trap out-of-range fast-path results
// instead of letting them wrap.
const debugChecks = true
