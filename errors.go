package fixnum

import "github.com/zeebo/errs"

// Error classes returned by parsing, arithmetic, and conversion.
// Match them with the Has method of the class, for example:
//
//	if fixnum.ErrOverflow.Has(err) { ... }
var (
	// ErrEmptyInput is returned by Parse when the input contains no digits.
	ErrEmptyInput = errs.Class("fixnum: empty input")

	// ErrInvalidCharacter is returned by Parse when the input contains
	// a byte outside the decimal grammar.
	ErrInvalidCharacter = errs.Class("fixnum: invalid character")

	// ErrTooManyFractionalDigits is returned by Parse when more than 19
	// significant fractional digits remain after applying the exponent.
	ErrTooManyFractionalDigits = errs.Class("fixnum: too many fractional digits")

	// ErrExponentOutOfRange is returned by Parse when the exponent
	// magnitude exceeds 38.
	ErrExponentOutOfRange = errs.Class("fixnum: exponent out of range")

	// ErrOverflow is returned when a result does not fit the representable
	// range [Min, Max].
	ErrOverflow = errs.Class("fixnum: overflow")

	// ErrDivisionByZero is returned by checked division and remainder
	// when the divisor is zero.
	ErrDivisionByZero = errs.Class("fixnum: division by zero")

	// ErrNegativeDomain is returned by checked square root and logarithm
	// when the operand is outside the function's domain.
	ErrNegativeDomain = errs.Class("fixnum: argument outside domain")

	// ErrInvalidExponent is reserved for power operations with an
	// unrepresentable exponent. Every int exponent is currently legal,
	// so no operation produces it.
	ErrInvalidExponent = errs.Class("fixnum: invalid exponent")

	// ErrPrecisionLoss is returned by conversions when the source value
	// cannot be represented exactly in 19 fractional digits.
	ErrPrecisionLoss = errs.Class("fixnum: precision loss")
)
