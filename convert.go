package fixnum

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"
)

var (
	bigScale  = new(big.Int).SetUint64(scaleUnit)
	bigMaxRaw = bigFromInt128(maxInt128)
	bigMinRaw = bigFromInt128(minInt128)
	bigMask64 = new(big.Int).SetUint64(^uint64(0))
	bigTen    = big.NewInt(10)

	// floatScale is 10^19 at a precision high enough to keep any
	// float64 product exact.
	floatScale = new(big.Float).SetPrec(floatConvPrec).SetUint64(scaleUnit)
)

// floatConvPrec bounds the mantissa of the float64 conversion scratch:
// 53 bits of double mantissa plus 64 bits of scale, with headroom.
const floatConvPrec = 192

// FromInt64 converts an int64 to a decimal. The conversion is exact and
// cannot fail: every int64 is well inside the integer range.
func FromInt64(i int64) Decimal {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	hi, lo := bits.Mul64(u, scaleUnit)
	raw, _ := int128FromMag(neg, uint128{hi: hi, lo: lo})
	return Decimal{raw}
}

// FromInt32 converts an int32 to a decimal.
func FromInt32(i int32) Decimal {
	return FromInt64(int64(i))
}

// FromInt converts an int to a decimal.
func FromInt(i int) Decimal {
	return FromInt64(int64(i))
}

// FromUint64 converts a uint64 to a decimal.
// Values above ⌊Max⌋ = 17_014_118_346_046_923_173 overflow.
func FromUint64(u uint64) (Decimal, error) {
	hi, lo := bits.Mul64(u, scaleUnit)
	raw, ok := int128FromMag(false, uint128{hi: hi, lo: lo})
	if !ok {
		return Decimal{}, ErrOverflow.New("%d", u)
	}
	return Decimal{raw}, nil
}

// FromInt128Parts converts a signed 128-bit integer, given as two words
// in two's complement, to a decimal.
func FromInt128Parts(hi int64, lo uint64) (Decimal, error) {
	var a, s wide
	a.setInt128(int128{hi: hi, lo: lo})
	s.setUint64(scaleUnit)
	a.mul(&a, &s)
	raw, ok := a.int128()
	if !ok {
		return Decimal{}, ErrOverflow.New("128-bit integer %d:%d", hi, lo)
	}
	return Decimal{raw}, nil
}

// FromBigInt converts a big integer to a decimal.
func FromBigInt(b *big.Int) (Decimal, error) {
	var t big.Int
	t.Mul(b, bigScale)
	raw, ok := bigToInt128(&t)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v", b)
	}
	return Decimal{raw}, nil
}

// FromFloat64 converts a float64 to a decimal exactly.
//
// The binary value of f must be representable in 19 fractional decimal
// digits: FromFloat64(0.5) succeeds, while FromFloat64(0.1) fails with
// [ErrPrecisionLoss] because the double closest to 0.1 is not 0.1.
// Use [Parse] or [MustParse] when the decimal literal is what matters.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ErrPrecisionLoss.New("%v", f)
	}
	var bf big.Float
	bf.SetPrec(floatConvPrec).SetFloat64(f)
	bf.Mul(&bf, floatScale)
	t, acc := bf.Int(nil)
	if acc != big.Exact {
		return Decimal{}, ErrPrecisionLoss.New("%v is not representable in 19 fractional digits", f)
	}
	raw, ok := bigToInt128(t)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v", f)
	}
	return Decimal{raw}, nil
}

// FromBigDecimal converts an arbitrary-precision decimal to a fixed-point
// decimal. The conversion is exact: fractional digits beyond the 19th
// must be zero, and the value must fit the range [Min, Max].
func FromBigDecimal(x decimal.Decimal) (Decimal, error) {
	coef := x.Coefficient()
	k := int(x.Exponent()) + scaleDigits
	var t big.Int
	t.Set(coef)
	switch {
	case t.Sign() == 0:
		return Zero, nil
	case k > 2*expLimit:
		return Decimal{}, ErrOverflow.New("%v", x)
	case k > 0:
		var p big.Int
		p.Exp(bigTen, big.NewInt(int64(k)), nil)
		t.Mul(&t, &p)
	case k < 0:
		var a big.Int
		digits := len(a.Abs(&t).String())
		if -k >= digits {
			return Decimal{}, ErrPrecisionLoss.New("%v", x)
		}
		var p, r big.Int
		p.Exp(bigTen, big.NewInt(int64(-k)), nil)
		t.QuoRem(&t, &p, &r)
		if r.Sign() != 0 {
			return Decimal{}, ErrPrecisionLoss.New("%v", x)
		}
	}
	raw, ok := bigToInt128(&t)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v", x)
	}
	return Decimal{raw}, nil
}

// Int64 returns the integer part of d, truncated towards zero.
func (d Decimal) Int64() (int64, error) {
	q, _ := d.raw.abs().divMod64(scaleUnit)
	if d.raw.isNeg() {
		if q.lo > 1<<63 {
			return 0, ErrOverflow.New("%v does not fit int64", d)
		}
		return -int64(q.lo), nil
	}
	if q.lo > math.MaxInt64 {
		return 0, ErrOverflow.New("%v does not fit int64", d)
	}
	return int64(q.lo), nil
}

// Float64 returns the nearest float64 to d.
// The conversion is lossy beyond the 15th significant digit.
func (d Decimal) Float64() float64 {
	ip, fr := d.raw.abs().divMod64(scaleUnit)
	f := float64(ip.lo) + float64(fr)/float64(scaleUnit)
	if d.raw.isNeg() {
		return -f
	}
	return f
}

// BigInt returns the integer part of d, truncated towards zero.
func (d Decimal) BigInt() *big.Int {
	t := bigFromInt128(d.raw)
	return t.Quo(t, bigScale)
}

// BigDecimal returns d as an arbitrary-precision decimal.
// The conversion is exact.
func (d Decimal) BigDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(bigFromInt128(d.raw), -scaleDigits)
}

// bigFromInt128 converts a signed 128-bit integer to a big integer.
func bigFromInt128(x int128) *big.Int {
	m := x.abs()
	var lo big.Int
	lo.SetUint64(m.lo)
	z := new(big.Int).SetUint64(m.hi)
	z.Lsh(z, 64)
	z.Add(z, &lo)
	if x.isNeg() {
		z.Neg(z)
	}
	return z
}

// bigToInt128 narrows a big integer to a signed 128-bit integer.
func bigToInt128(t *big.Int) (int128, bool) {
	var a big.Int
	a.Abs(t)
	if a.BitLen() > 128 {
		return int128{}, false
	}
	var hi, lo big.Int
	hi.Rsh(&a, 64)
	lo.And(&a, bigMask64)
	return int128FromMag(t.Sign() < 0, uint128{hi: hi.Uint64(), lo: lo.Uint64()})
}
