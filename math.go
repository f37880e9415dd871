package fixnum

import "fmt"

// Arithmetic comes in three tiers:
//
//   - Unchecked (Add, Mul, ...): the fast path. Out-of-range results wrap
//     silently, or panic when built with -tags fixnumcheck. Division and
//     remainder panic on a zero divisor in every build, and Sqrt, Ln, and
//     Log10Floor panic outside their domain.
//   - Checked (CheckedAdd, ...): return an error instead of wrapping or
//     panicking.
//   - Saturating (SaturatingAdd, ...): clamp out-of-range results to
//     [Min] or [Max]. Failures with no clamp target (zero divisor, domain)
//     still return an error.

// square root bounds for logarithm range reduction, both at scale 10^19:
// sqrt2Up is √2 rounded up, sqrt2Dn is 1/√2 rounded down.
const (
	sqrt2Up = uint64(14_142_135_623_730_950_488)
	sqrt2Dn = uint64(7_071_067_811_865_475_244)
	ln2Raw  = uint64(6_931_471_805_599_453_094)
)

// Add returns d + e, wrapping on overflow.
func (d Decimal) Add(e Decimal) Decimal {
	z, ok := d.raw.add(e.raw)
	if debugChecks && !ok {
		panic(fmt.Sprintf("Add(%v, %v) failed: overflow", d, e))
	}
	return Decimal{z}
}

// CheckedAdd returns d + e, or an error on overflow.
func (d Decimal) CheckedAdd(e Decimal) (Decimal, error) {
	z, ok := d.raw.add(e.raw)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v + %v", d, e)
	}
	return Decimal{z}, nil
}

// SaturatingAdd returns d + e, clamping to [Min] or [Max] on overflow.
func (d Decimal) SaturatingAdd(e Decimal) Decimal {
	z, ok := d.raw.add(e.raw)
	if !ok {
		if d.raw.isNeg() {
			return Min
		}
		return Max
	}
	return Decimal{z}
}

// Sub returns d - e, wrapping on overflow.
func (d Decimal) Sub(e Decimal) Decimal {
	z, ok := d.raw.sub(e.raw)
	if debugChecks && !ok {
		panic(fmt.Sprintf("Sub(%v, %v) failed: overflow", d, e))
	}
	return Decimal{z}
}

// CheckedSub returns d - e, or an error on overflow.
func (d Decimal) CheckedSub(e Decimal) (Decimal, error) {
	z, ok := d.raw.sub(e.raw)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v - %v", d, e)
	}
	return Decimal{z}, nil
}

// SaturatingSub returns d - e, clamping to [Min] or [Max] on overflow.
func (d Decimal) SaturatingSub(e Decimal) Decimal {
	z, ok := d.raw.sub(e.raw)
	if !ok {
		if d.raw.isNeg() {
			return Min
		}
		return Max
	}
	return Decimal{z}
}

// Neg returns -d. Negating [Min] yields [Max], since -Min exceeds the
// representable range by one smallest step.
func (d Decimal) Neg() Decimal {
	if d.raw == minInt128 {
		return Max
	}
	return Decimal{d.raw.neg()}
}

// CheckedNeg returns -d, or an error if d is [Min].
func (d Decimal) CheckedNeg() (Decimal, error) {
	if d.raw == minInt128 {
		return Decimal{}, ErrOverflow.New("-(%v)", d)
	}
	return Decimal{d.raw.neg()}, nil
}

// SaturatingNeg returns -d, clamping -[Min] to [Max].
func (d Decimal) SaturatingNeg() Decimal {
	return d.Neg()
}

// Abs returns |d|. The absolute value of [Min] yields [Max].
func (d Decimal) Abs() Decimal {
	if d.raw.isNeg() {
		return d.Neg()
	}
	return d
}

// CheckedAbs returns |d|, or an error if d is [Min].
func (d Decimal) CheckedAbs() (Decimal, error) {
	if d.raw.isNeg() {
		return d.CheckedNeg()
	}
	return d, nil
}

// SaturatingAbs returns |d|, clamping |[Min]| to [Max].
func (d Decimal) SaturatingAbs() Decimal {
	return d.Abs()
}

// Signum returns -1, 0, or 1 as a decimal.
func (d Decimal) Signum() Decimal {
	switch d.raw.sign() {
	case -1:
		return One.Neg()
	case 1:
		return One
	}
	return Zero
}

// mulRaw calculates x * y / 10^19 rounded half away from zero, widening
// the product to 256 bits. ok is false if the result does not fit.
func mulRaw(x, y int128) (z int128, ok bool) {
	neg := x.isNeg() != y.isNeg()
	var a, b wide
	a.setMag(x.abs())
	b.setMag(y.abs())
	a.mul(&a, &b)
	b.setUint64(halfScaleUnit)
	a.add(&a, &b)
	b.setUint64(scaleUnit)
	a.quo(&a, &b)
	m, fits := a.mag()
	if !fits {
		return int128Wrap(neg, a.lowMag()), false
	}
	z, ok = int128FromMag(neg, m)
	if !ok {
		return int128Wrap(neg, m), false
	}
	return z, true
}

// divRaw calculates x * 10^19 / y rounded half away from zero, widening
// the dividend to 256 bits. y must be nonzero; ok is false if the result
// does not fit.
func divRaw(x, y int128) (z int128, ok bool) {
	neg := x.isNeg() != y.isNeg()
	var a, b, h wide
	a.setMag(x.abs())
	b.setUint64(scaleUnit)
	a.mul(&a, &b)
	b.setMag(y.abs())
	h.half(&b)
	a.add(&a, &h)
	a.quo(&a, &b)
	m, fits := a.mag()
	if !fits {
		return int128Wrap(neg, a.lowMag()), false
	}
	z, ok = int128FromMag(neg, m)
	if !ok {
		return int128Wrap(neg, m), false
	}
	return z, true
}

// Mul returns the product d * e rounded half away from zero at the last
// fractional digit, wrapping on overflow.
func (d Decimal) Mul(e Decimal) Decimal {
	z, ok := mulRaw(d.raw, e.raw)
	if debugChecks && !ok {
		panic(fmt.Sprintf("Mul(%v, %v) failed: overflow", d, e))
	}
	return Decimal{z}
}

// CheckedMul returns the product d * e rounded half away from zero at the
// last fractional digit, or an error on overflow.
func (d Decimal) CheckedMul(e Decimal) (Decimal, error) {
	z, ok := mulRaw(d.raw, e.raw)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v * %v", d, e)
	}
	return Decimal{z}, nil
}

// SaturatingMul returns the product d * e, clamping to [Min] or [Max]
// on overflow.
func (d Decimal) SaturatingMul(e Decimal) Decimal {
	z, ok := mulRaw(d.raw, e.raw)
	if !ok {
		if d.raw.isNeg() != e.raw.isNeg() {
			return Min
		}
		return Max
	}
	return Decimal{z}
}

// Div returns the quotient d / e rounded half away from zero at the last
// fractional digit, wrapping on overflow. Div panics if e is zero.
func (d Decimal) Div(e Decimal) Decimal {
	if e.raw.isZero() {
		panic(fmt.Sprintf("Div(%v, %v) failed: division by zero", d, e))
	}
	z, ok := divRaw(d.raw, e.raw)
	if debugChecks && !ok {
		panic(fmt.Sprintf("Div(%v, %v) failed: overflow", d, e))
	}
	return Decimal{z}
}

// CheckedDiv returns the quotient d / e rounded half away from zero at the
// last fractional digit, or an error if e is zero or the result overflows.
func (d Decimal) CheckedDiv(e Decimal) (Decimal, error) {
	if e.raw.isZero() {
		return Decimal{}, ErrDivisionByZero.New("%v / %v", d, e)
	}
	z, ok := divRaw(d.raw, e.raw)
	if !ok {
		return Decimal{}, ErrOverflow.New("%v / %v", d, e)
	}
	return Decimal{z}, nil
}

// SaturatingDiv returns the quotient d / e, clamping to [Min] or [Max] on
// overflow. A zero divisor has no clamp target and returns an error.
func (d Decimal) SaturatingDiv(e Decimal) (Decimal, error) {
	if e.raw.isZero() {
		return Decimal{}, ErrDivisionByZero.New("%v / %v", d, e)
	}
	z, ok := divRaw(d.raw, e.raw)
	if !ok {
		if d.raw.isNeg() != e.raw.isNeg() {
			return Min, nil
		}
		return Max, nil
	}
	return Decimal{z}, nil
}

// remRaw calculates x mod y with the sign of x. y must be nonzero.
// The result never overflows: |z| < |y| or, for Min mod -SmallestStep, 0.
func remRaw(x, y int128) int128 {
	var a, b wide
	a.setInt128(x)
	b.setInt128(y)
	a.rem(&a, &b)
	z, _ := a.int128()
	return z
}

// Rem returns the remainder of d / e with the sign of d.
// Rem panics if e is zero.
func (d Decimal) Rem(e Decimal) Decimal {
	if e.raw.isZero() {
		panic(fmt.Sprintf("Rem(%v, %v) failed: division by zero", d, e))
	}
	return Decimal{remRaw(d.raw, e.raw)}
}

// CheckedRem returns the remainder of d / e with the sign of d, or an
// error if e is zero.
func (d Decimal) CheckedRem(e Decimal) (Decimal, error) {
	if e.raw.isZero() {
		return Decimal{}, ErrDivisionByZero.New("%v %% %v", d, e)
	}
	return Decimal{remRaw(d.raw, e.raw)}, nil
}

// SaturatingRem is equivalent to [Decimal.CheckedRem]; the remainder
// never overflows, so there is nothing to clamp.
func (d Decimal) SaturatingRem(e Decimal) (Decimal, error) {
	return d.CheckedRem(e)
}

// Pow returns d raised to the integer power exp, computed by repeated
// squaring, wrapping on overflow. Negative exponents invert d first;
// Pow panics if d is zero and exp is negative. Pow(0) is 1 for any d.
func (d Decimal) Pow(exp int) Decimal {
	base := d
	if exp < 0 {
		base = One.Div(d)
		exp = -exp
	}
	z := One
	for exp > 0 {
		if exp&1 == 1 {
			z = z.Mul(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}
	return z
}

// CheckedPow returns d raised to the integer power exp, or an error on
// overflow or when inverting zero.
func (d Decimal) CheckedPow(exp int) (Decimal, error) {
	base := d
	if exp < 0 {
		var err error
		base, err = One.CheckedDiv(d)
		if err != nil {
			return Decimal{}, err
		}
		exp = -exp
	}
	z := One
	var err error
	for exp > 0 {
		if exp&1 == 1 {
			z, err = z.CheckedMul(base)
			if err != nil {
				return Decimal{}, ErrOverflow.New("%v ^ %d", d, exp)
			}
		}
		exp >>= 1
		if exp > 0 {
			base, err = base.CheckedMul(base)
			if err != nil {
				return Decimal{}, ErrOverflow.New("%v ^ %d", d, exp)
			}
		}
	}
	return z, nil
}

// SaturatingPow returns d raised to the integer power exp, clamping to
// [Min] or [Max] on overflow. Inverting zero returns an error.
func (d Decimal) SaturatingPow(exp int) (Decimal, error) {
	z, err := d.CheckedPow(exp)
	switch {
	case err == nil:
		return z, nil
	case ErrDivisionByZero.Has(err):
		return Decimal{}, err
	}
	if d.raw.isNeg() && exp&1 == 1 {
		return Min, nil
	}
	return Max, nil
}

// sqrtRaw calculates ⌊√(x * 10^19)⌋ for non-negative x using Newton's
// method on the widened radicand. The initial guess is the power of two
// just above the square root, so the iteration descends monotonically.
func sqrtRaw(x int128) int128 {
	if x.isZero() {
		return int128{}
	}
	var t, s, g, n, q wide
	t.setMag(x.abs())
	s.setUint64(scaleUnit)
	t.mul(&t, &s)
	g.setUint64(1)
	g.lsh(&g, uint(t.bitLen()+1)/2)
	for {
		q.quo(&t, &g)
		n.add(&g, &q)
		n.half(&n)
		if n.cmp(&g) >= 0 {
			break
		}
		g.set(&n)
	}
	m, _ := g.mag()
	z, _ := int128FromMag(false, m)
	return z
}

// Sqrt returns the square root of d truncated to 19 fractional digits.
// Sqrt panics if d is negative.
func (d Decimal) Sqrt() Decimal {
	if d.raw.isNeg() {
		panic(fmt.Sprintf("Sqrt(%v) failed: argument outside domain", d))
	}
	return Decimal{sqrtRaw(d.raw)}
}

// CheckedSqrt returns the square root of d truncated to 19 fractional
// digits, or an error if d is negative.
func (d Decimal) CheckedSqrt() (Decimal, error) {
	if d.raw.isNeg() {
		return Decimal{}, ErrNegativeDomain.New("sqrt(%v)", d)
	}
	return Decimal{sqrtRaw(d.raw)}, nil
}

// SaturatingSqrt is equivalent to [Decimal.CheckedSqrt]; a square root
// never overflows, so there is nothing to clamp.
func (d Decimal) SaturatingSqrt() (Decimal, error) {
	return d.CheckedSqrt()
}

// lnRaw calculates ln(x / 10^19) * 10^19 for positive x.
//
// The argument is halved or doubled into [1/√2, √2], recording the power
// of two, and the remainder is summed with the atanh series
//
//	ln(v) = 2 * (u + u³/3 + u⁵/5 + ...),  u = (v-1)/(v+1)
//
// on the wide scratch. The result is the series plus exp * ln 2.
func lnRaw(x int128) int128 {
	var v, s, b, u, num, upow, sum, term, k wide
	v.setMag(x.abs())
	s.setUint64(scaleUnit)
	exp := int64(0)
	b.setUint64(sqrt2Up)
	for v.cmp(&b) > 0 {
		v.half(&v)
		exp++
	}
	b.setUint64(sqrt2Dn)
	for v.cmp(&b) < 0 {
		v.lsh(&v, 1)
		exp--
	}
	num.sub(&v, &s)
	num.mul(&num, &s)
	b.add(&v, &s)
	u.quo(&num, &b)
	sum.set(&u)
	upow.set(&u)
	for i := int64(3); ; i += 2 {
		upow.mul(&upow, &u)
		upow.quo(&upow, &s)
		upow.mul(&upow, &u)
		upow.quo(&upow, &s)
		k.setInt64(i)
		term.quo(&upow, &k)
		if term.isZero() {
			break
		}
		sum.add(&sum, &term)
	}
	sum.add(&sum, &sum)
	k.setUint64(ln2Raw)
	b.setInt64(exp)
	k.mul(&k, &b)
	sum.add(&sum, &k)
	z, _ := sum.int128()
	return z
}

// Ln returns the natural logarithm of d. Ln panics if d is not positive.
func (d Decimal) Ln() Decimal {
	if d.raw.sign() <= 0 {
		panic(fmt.Sprintf("Ln(%v) failed: argument outside domain", d))
	}
	return Decimal{lnRaw(d.raw)}
}

// CheckedLn returns the natural logarithm of d, or an error if d is not
// positive.
func (d Decimal) CheckedLn() (Decimal, error) {
	if d.raw.sign() <= 0 {
		return Decimal{}, ErrNegativeDomain.New("ln(%v)", d)
	}
	return Decimal{lnRaw(d.raw)}, nil
}

// SaturatingLn is equivalent to [Decimal.CheckedLn]; a logarithm never
// overflows, so there is nothing to clamp.
func (d Decimal) SaturatingLn() (Decimal, error) {
	return d.CheckedLn()
}

// Log10Floor returns ⌊log₁₀(d)⌋ as a decimal, computed from the decimal
// digit count of the raw integer. Log10Floor panics if d is not positive.
func (d Decimal) Log10Floor() Decimal {
	if d.raw.sign() <= 0 {
		panic(fmt.Sprintf("Log10Floor(%v) failed: argument outside domain", d))
	}
	return FromInt64(int64(d.raw.abs().prec()) - scaleDigits - 1)
}

// CheckedLog10Floor returns ⌊log₁₀(d)⌋ as a decimal, or an error if d is
// not positive.
func (d Decimal) CheckedLog10Floor() (Decimal, error) {
	if d.raw.sign() <= 0 {
		return Decimal{}, ErrNegativeDomain.New("log10(%v)", d)
	}
	return FromInt64(int64(d.raw.abs().prec()) - scaleDigits - 1), nil
}

// SaturatingLog10Floor is equivalent to [Decimal.CheckedLog10Floor].
func (d Decimal) SaturatingLog10Floor() (Decimal, error) {
	return d.CheckedLog10Floor()
}

// rescaleShift converts a digit position to a power-of-ten shift.
// digits is clamped to [-19, 19]; the shift is 19 - digits.
func rescaleShift(digits int) int {
	switch {
	case digits > scaleDigits:
		digits = scaleDigits
	case digits < -scaleDigits:
		digits = -scaleDigits
	}
	return scaleDigits - digits
}

// halfPow10 returns 10^k / 2 as a magnitude, for k in [1, 38].
func halfPow10(k int) uint128 {
	if k <= scaleDigits {
		return uint128{lo: pow10[k] / 2}
	}
	h, _ := upow10[k-1].mul64(5)
	return h
}

// Trunc returns d with the fractional part removed, rounding towards zero.
func (d Decimal) Trunc() Decimal {
	return d.TruncTo(0)
}

// TruncTo returns d rounded towards zero at the given decimal position.
// Positive digits keep that many fractional digits; negative digits zero
// whole-number positions. digits outside [-19, 19] are clamped.
func (d Decimal) TruncTo(digits int) Decimal {
	k := rescaleShift(digits)
	if k == 0 {
		return d
	}
	q, _ := d.raw.abs().rshDown(k)
	m, _ := q.lsh(k)
	z, _ := int128FromMag(d.raw.isNeg(), m)
	return Decimal{z}
}

// Floor returns the largest integer value not greater than d.
func (d Decimal) Floor() Decimal {
	return d.FloorTo(0)
}

// FloorTo returns d rounded towards negative infinity at the given
// decimal position. If the step past [Min] is unrepresentable, d is
// returned unchanged.
func (d Decimal) FloorTo(digits int) Decimal {
	k := rescaleShift(digits)
	if k == 0 {
		return d
	}
	neg := d.raw.isNeg()
	q, r := d.raw.abs().rshDown(k)
	m, _ := q.lsh(k)
	if neg && !r.isZero() {
		m2, ok := m.add(upow10[k])
		if !ok {
			return d
		}
		z, ok := int128FromMag(true, m2)
		if !ok {
			return d
		}
		return Decimal{z}
	}
	z, _ := int128FromMag(neg, m)
	return Decimal{z}
}

// Ceil returns the smallest integer value not less than d.
func (d Decimal) Ceil() Decimal {
	return d.CeilTo(0)
}

// CeilTo returns d rounded towards positive infinity at the given
// decimal position. If the step past [Max] is unrepresentable, d is
// returned unchanged.
func (d Decimal) CeilTo(digits int) Decimal {
	k := rescaleShift(digits)
	if k == 0 {
		return d
	}
	neg := d.raw.isNeg()
	q, r := d.raw.abs().rshDown(k)
	m, _ := q.lsh(k)
	if !neg && !r.isZero() {
		m2, ok := m.add(upow10[k])
		if !ok {
			return d
		}
		z, ok := int128FromMag(false, m2)
		if !ok {
			return d
		}
		return Decimal{z}
	}
	z, _ := int128FromMag(neg, m)
	return Decimal{z}
}

// Round returns d rounded to the nearest integer, half away from zero.
func (d Decimal) Round() Decimal {
	return d.RoundTo(0)
}

// RoundTo returns d rounded to the nearest value at the given decimal
// position, half away from zero. If rounding up is unrepresentable, the
// value is truncated instead.
func (d Decimal) RoundTo(digits int) Decimal {
	k := rescaleShift(digits)
	if k == 0 {
		return d
	}
	neg := d.raw.isNeg()
	q, r := d.raw.abs().rshDown(k)
	if r.cmp(halfPow10(k)) >= 0 {
		if q2, ok := q.add(uint128{lo: 1}); ok {
			if m, ok := q2.lsh(k); ok {
				if z, ok := int128FromMag(neg, m); ok {
					return Decimal{z}
				}
			}
		}
	}
	m, _ := q.lsh(k)
	z, _ := int128FromMag(neg, m)
	return Decimal{z}
}
