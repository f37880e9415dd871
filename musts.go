package fixnum

import "fmt"

// MustParse is like [Parse] but panics on error.
// Use it to initialize package-level constants from literals:
//
//	var fee = fixnum.MustParse("0.000_25")
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustFromFloat64 is like [FromFloat64] but panics on error.
func MustFromFloat64(f float64) Decimal {
	d, err := FromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustFromFloat64(%v) failed: %v", f, err))
	}
	return d
}
