//go:build !fixnum_purebig

package fixnum

import "github.com/holiman/uint256"

// wide is a signed 256-bit scratch integer backed by uint256.Int in
// two's complement form. It never escapes the arithmetic core: products,
// scaled dividends, and series terms are widened here and narrowed back
// to int128 at the end.
type wide struct {
	n uint256.Int
}

func (z *wide) setUint64(x uint64) *wide {
	z.n.SetUint64(x)
	return z
}

func (z *wide) setInt64(x int64) *wide {
	if x >= 0 {
		z.n.SetUint64(uint64(x))
		return z
	}
	z.n.SetUint64(uint64(-x))
	z.n.Neg(&z.n)
	return z
}

// setMag sets z to the non-negative value of a 128-bit magnitude.
func (z *wide) setMag(m uint128) *wide {
	z.n[0] = m.lo
	z.n[1] = m.hi
	z.n[2] = 0
	z.n[3] = 0
	return z
}

func (z *wide) setInt128(x int128) *wide {
	z.setMag(x.abs())
	if x.isNeg() {
		z.n.Neg(&z.n)
	}
	return z
}

func (z *wide) set(x *wide) *wide {
	z.n.Set(&x.n)
	return z
}

func (z *wide) add(x, y *wide) *wide {
	z.n.Add(&x.n, &y.n)
	return z
}

func (z *wide) sub(x, y *wide) *wide {
	z.n.Sub(&x.n, &y.n)
	return z
}

func (z *wide) mul(x, y *wide) *wide {
	z.n.Mul(&x.n, &y.n)
	return z
}

// quo calculates z = x / y truncated towards zero. y must be nonzero.
func (z *wide) quo(x, y *wide) *wide {
	z.n.SDiv(&x.n, &y.n)
	return z
}

// rem calculates z = x mod y with the sign of x. y must be nonzero.
func (z *wide) rem(x, y *wide) *wide {
	z.n.SMod(&x.n, &y.n)
	return z
}

// half calculates z = x / 2 for non-negative x.
func (z *wide) half(x *wide) *wide {
	z.n.Rsh(&x.n, 1)
	return z
}

// lsh calculates z = x * 2^shift for non-negative x.
func (z *wide) lsh(x *wide, shift uint) *wide {
	z.n.Lsh(&x.n, shift)
	return z
}

func (x *wide) sign() int {
	return x.n.Sign()
}

func (x *wide) isZero() bool {
	return x.n.IsZero()
}

// cmp compares x and y as signed integers.
func (x *wide) cmp(y *wide) int {
	sx, sy := x.n.Sign(), y.n.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	// Unsigned comparison orders same-signed two's complement values.
	return x.n.Cmp(&y.n)
}

// bitLen returns the length of |x| in bits.
func (x *wide) bitLen() int {
	var a uint256.Int
	a.Abs(&x.n)
	return a.BitLen()
}

// mag narrows a non-negative x to a 128-bit magnitude.
func (x *wide) mag() (uint128, bool) {
	if x.n[2] != 0 || x.n[3] != 0 {
		return uint128{}, false
	}
	return uint128{hi: x.n[1], lo: x.n[0]}, true
}

// lowMag returns the low 128 bits of a non-negative x.
func (x *wide) lowMag() uint128 {
	return uint128{hi: x.n[1], lo: x.n[0]}
}

// int128 narrows x to a signed 128-bit integer.
func (x *wide) int128() (int128, bool) {
	var a uint256.Int
	a.Abs(&x.n)
	if a[2] != 0 || a[3] != 0 {
		return int128{}, false
	}
	return int128FromMag(x.n.Sign() < 0, uint128{hi: a[1], lo: a[0]})
}
