package fixnum

import "math/bits"

// scaleDigits is the number of fractional decimal digits carried by every value.
const scaleDigits = 19

// scaleUnit is 10^scaleDigits, the raw representation of 1.
const scaleUnit = uint64(10_000_000_000_000_000_000)

// halfScaleUnit is 10^scaleDigits / 2, the rounding bias for products and quotients.
const halfScaleUnit = scaleUnit / 2

// pow10 is a cache of powers of 10 that fit in a uint64, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// upow10 is a cache of powers of 10 that fit in a uint128, where upow10[x] = 10^x.
var upow10 = [...]uint128{
	{0, 1},                                           // 10^0
	{0, 10},                                          // 10^1
	{0, 100},                                         // 10^2
	{0, 1_000},                                       // 10^3
	{0, 10_000},                                      // 10^4
	{0, 100_000},                                     // 10^5
	{0, 1_000_000},                                   // 10^6
	{0, 10_000_000},                                  // 10^7
	{0, 100_000_000},                                 // 10^8
	{0, 1_000_000_000},                               // 10^9
	{0, 10_000_000_000},                              // 10^10
	{0, 100_000_000_000},                             // 10^11
	{0, 1_000_000_000_000},                           // 10^12
	{0, 10_000_000_000_000},                          // 10^13
	{0, 100_000_000_000_000},                         // 10^14
	{0, 1_000_000_000_000_000},                       // 10^15
	{0, 10_000_000_000_000_000},                      // 10^16
	{0, 100_000_000_000_000_000},                     // 10^17
	{0, 1_000_000_000_000_000_000},                   // 10^18
	{0, 10_000_000_000_000_000_000},                  // 10^19
	{5, 7_766_279_631_452_241_920},                   // 10^20
	{54, 3_875_820_019_684_212_736},                  // 10^21
	{542, 1_864_712_049_423_024_128},                 // 10^22
	{5_421, 200_376_420_520_689_664},                 // 10^23
	{54_210, 2_003_764_205_206_896_640},              // 10^24
	{542_101, 1_590_897_978_359_414_784},             // 10^25
	{5_421_010, 15_908_979_783_594_147_840},          // 10^26
	{54_210_108, 11_515_845_246_265_065_472},         // 10^27
	{542_101_086, 4_477_988_020_393_345_024},         // 10^28
	{5_421_010_862, 7_886_392_056_514_347_008},       // 10^29
	{54_210_108_624, 5_076_944_270_305_263_616},      // 10^30
	{542_101_086_242, 13_875_954_555_633_532_928},    // 10^31
	{5_421_010_862_427, 9_632_337_040_368_467_968},   // 10^32
	{54_210_108_624_275, 4_089_650_035_136_921_600},  // 10^33
	{542_101_086_242_752, 4_003_012_203_950_112_768}, // 10^34
	{5_421_010_862_427_522, 3_136_633_892_082_024_448},    // 10^35
	{54_210_108_624_275_221, 12_919_594_847_110_692_864},  // 10^36
	{542_101_086_242_752_217, 68_739_955_140_067_328},     // 10^37
	{5_421_010_862_427_522_170, 687_399_551_400_673_280},  // 10^38
}

// int128 is a signed two's complement 128-bit integer, hi carrying the sign.
type int128 struct {
	hi int64
	lo uint64
}

// uint128 is an unsigned 128-bit integer, used for magnitudes.
type uint128 struct {
	hi, lo uint64
}

var (
	minInt128 = int128{hi: -0x8000_0000_0000_0000, lo: 0}
	maxInt128 = int128{hi: 0x7fff_ffff_ffff_ffff, lo: 0xffff_ffff_ffff_ffff}
)

func (x int128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x int128) isNeg() bool {
	return x.hi < 0
}

// sign returns -1, 0, or 1.
func (x int128) sign() int {
	if x.hi < 0 {
		return -1
	}
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	return 1
}

// cmp compares x and y as signed integers.
func (x int128) cmp(y int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// add calculates x + y and checks overflow.
// The returned sum is the wrapped two's complement result either way.
func (x int128) add(y int128) (z int128, ok bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi := x.hi + y.hi + int64(carry)
	z = int128{hi: hi, lo: lo}
	// Overflow flips the sign of same-signed operands.
	ok = (x.hi < 0) != (y.hi < 0) || (z.hi < 0) == (x.hi < 0)
	return z, ok
}

// sub calculates x - y and checks overflow.
// The returned difference is the wrapped two's complement result either way.
func (x int128) sub(y int128) (z int128, ok bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi := x.hi - y.hi - int64(borrow)
	z = int128{hi: hi, lo: lo}
	ok = (x.hi < 0) == (y.hi < 0) || (z.hi < 0) == (x.hi < 0)
	return z, ok
}

// neg calculates -x, wrapping at minInt128.
func (x int128) neg() int128 {
	lo, borrow := bits.Sub64(0, x.lo, 0)
	return int128{hi: -x.hi - int64(borrow), lo: lo}
}

// abs returns |x| as a magnitude.
// abs(minInt128) is 2^127, which a uint128 holds exactly.
func (x int128) abs() uint128 {
	if x.hi >= 0 {
		return uint128{hi: uint64(x.hi), lo: x.lo}
	}
	n := x.neg()
	return uint128{hi: uint64(n.hi), lo: n.lo}
}

// int128FromMag assembles a signed value from a sign and a magnitude.
// ok is false if the magnitude exceeds 2^127-1 (positive) or 2^127 (negative).
func int128FromMag(neg bool, m uint128) (z int128, ok bool) {
	if !neg {
		if m.hi > uint64(maxInt128.hi) {
			return int128{}, false
		}
		return int128{hi: int64(m.hi), lo: m.lo}, true
	}
	if m.hi > 1<<63 || (m.hi == 1<<63 && m.lo != 0) {
		return int128{}, false
	}
	return int128{hi: int64(m.hi), lo: m.lo}.neg(), true
}

// int128Wrap assembles a signed value from a sign and a magnitude,
// wrapping modulo 2^128 when the magnitude does not fit.
func int128Wrap(neg bool, m uint128) int128 {
	z := int128{hi: int64(m.hi), lo: m.lo}
	if neg {
		z = z.neg()
	}
	return z
}

func (x uint128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// add calculates x + y and checks overflow.
func (x uint128) add(y uint128) (z uint128, ok bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	return uint128{hi: hi, lo: lo}, carry == 0
}

// sub calculates x - y and checks underflow.
func (x uint128) sub(y uint128) (z uint128, ok bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, borrow := bits.Sub64(x.hi, y.hi, borrow)
	return uint128{hi: hi, lo: lo}, borrow == 0
}

// mul64 calculates x * y and checks overflow.
func (x uint128) mul64(y uint64) (z uint128, ok bool) {
	hi1, lo1 := bits.Mul64(x.lo, y)
	hi2, lo2 := bits.Mul64(x.hi, y)
	if hi2 != 0 {
		return uint128{}, false
	}
	hi, carry := bits.Add64(hi1, lo2, 0)
	return uint128{hi: hi, lo: lo1}, carry == 0
}

// fsa (Fused Shift and Addition) calculates x * 10 + d and checks overflow.
func (x uint128) fsa(d uint64) (z uint128, ok bool) {
	z, ok = x.mul64(10)
	if !ok {
		return uint128{}, false
	}
	lo, carry := bits.Add64(z.lo, d, 0)
	hi, carry := bits.Add64(z.hi, 0, carry)
	return uint128{hi: hi, lo: lo}, carry == 0
}

// divMod64 calculates q = ⌊x / y⌋ and r = x mod y for a nonzero uint64 divisor.
func (x uint128) divMod64(y uint64) (q uint128, r uint64) {
	qhi := x.hi / y
	rhi := x.hi % y
	qlo, r := bits.Div64(rhi, x.lo, y)
	return uint128{hi: qhi, lo: qlo}, r
}

// rshDown calculates ⌊x / 10^shift⌋ and the remainder x mod 10^shift.
// shift must be within [0, 38].
func (x uint128) rshDown(shift int) (q, r uint128) {
	if shift <= scaleDigits {
		q, rlo := x.divMod64(pow10[shift])
		return q, uint128{lo: rlo}
	}
	// Two stages: divide by 10^19, then by the remaining power,
	// and recompose the remainder.
	q1, r1 := x.divMod64(pow10[scaleDigits])
	q2, r2 := q1.divMod64(pow10[shift-scaleDigits])
	hi, lo := bits.Mul64(r2, pow10[scaleDigits])
	lo, carry := bits.Add64(lo, r1, 0)
	return q2, uint128{hi: hi + carry, lo: lo}
}

// lsh calculates x * 10^shift and checks overflow.
func (x uint128) lsh(shift int) (z uint128, ok bool) {
	z = x
	for shift > 0 {
		step := shift
		if step > scaleDigits {
			step = scaleDigits
		}
		z, ok = z.mul64(pow10[step])
		if !ok {
			return uint128{}, false
		}
		shift -= step
	}
	return z, true
}

// prec returns the length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x uint128) prec() int {
	left, right := 0, len(upow10)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(upow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}
