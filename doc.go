/*
Package fixnum implements a fixed-point decimal number with 19 integer
and 19 fractional digits.

# Representation

[Decimal] is a struct with a single field: a signed 128-bit integer raw,
stored as two machine words. The numeric value is always raw / 10^19.
Unlike floating-point decimals, the scale is a property of the type, not
of the value:

  - every value has exactly one representation, so comparison is a plain
    integer comparison;
  - addition and subtraction are single 128-bit integer operations;
  - there are no special values such as NaN, Infinity, or negative zero.

The representable range is [Min, Max]:

	-17_014_118_346_046_923_173.168_730_371_588_410_572_8
	+17_014_118_346_046_923_173.168_730_371_588_410_572_7

and the distance between adjacent values is [SmallestStep] = 10^-19.

# Operations

Every arithmetic operation comes in three tiers:

  - Unchecked ([Decimal.Add], [Decimal.Mul], ...) is the fast path for
    code that has already established its bounds. Out-of-range results
    wrap silently; building with -tags fixnumcheck turns the wraps into
    panics during testing. Division by zero and domain violations panic
    in every build.
  - Checked ([Decimal.CheckedAdd], ...) returns an error instead.
  - Saturating ([Decimal.SaturatingAdd], ...) clamps to [Min] or [Max].

Multiplication and division compute the 256-bit exact result and round
half away from zero at the 19th fractional digit. [Decimal.Sqrt] is the
exact root truncated at the 19th fractional digit, via integer Newton
iteration; [Decimal.Ln] sums an atanh series on the same 256-bit
scratch. The scratch is backed by github.com/holiman/uint256; building
with -tags fixnum_purebig swaps in a math/big implementation.

# Conversions

The package converts:

  - from/to string: [Parse], [MustParse], [Decimal.String],
    [Decimal.Text], [Decimal.Format].
  - from/to binary integers: [FromInt64], [FromUint64], [FromBigInt],
    [Decimal.Int64], [Decimal.BigInt].
  - from/to float64: [FromFloat64], [Decimal.Float64]. FromFloat64 is
    exact and rejects values that do not fit 19 fractional digits.
  - from/to arbitrary-precision decimals: [FromBigDecimal],
    [Decimal.BigDecimal] (github.com/shopspring/decimal).

[Decimal] also implements the text, JSON, and binary marshaler
interfaces and database/sql's Scanner and Valuer.

# Literals

Decimal literals in source code go through [MustParse], or through the
cmd/fixnumgen generator, which parses literals with the runtime parser
at go:generate time and emits [FromRaw] constants.
*/
package fixnum
