//go:build fixnum_purebig

package fixnum

import "math/big"

// wide is a signed 256-bit scratch integer backed by math/big.
// It mirrors the uint256 backend method for method; the build tag
// fixnum_purebig selects this portable implementation.
type wide struct {
	n big.Int
}

var (
	mask64  = new(big.Int).SetUint64(^uint64(0))
	mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

func (z *wide) setUint64(x uint64) *wide {
	z.n.SetUint64(x)
	return z
}

func (z *wide) setInt64(x int64) *wide {
	z.n.SetInt64(x)
	return z
}

// setMag sets z to the non-negative value of a 128-bit magnitude.
func (z *wide) setMag(m uint128) *wide {
	var lo big.Int
	lo.SetUint64(m.lo)
	z.n.SetUint64(m.hi)
	z.n.Lsh(&z.n, 64)
	z.n.Add(&z.n, &lo)
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
	z.n.Quo(&x.n, &y.n)
	return z
}

// rem calculates z = x mod y with the sign of x. y must be nonzero.
func (z *wide) rem(x, y *wide) *wide {
	z.n.Rem(&x.n, &y.n)
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
	return x.n.Sign() == 0
}

// cmp compares x and y as signed integers.
func (x *wide) cmp(y *wide) int {
	return x.n.Cmp(&y.n)
}

// bitLen returns the length of |x| in bits.
func (x *wide) bitLen() int {
	return x.n.BitLen()
}

// mag narrows a non-negative x to a 128-bit magnitude.
func (x *wide) mag() (uint128, bool) {
	if x.n.BitLen() > 128 {
		return uint128{}, false
	}
	var hi, lo big.Int
	hi.Rsh(&x.n, 64)
	lo.And(&x.n, mask64)
	return uint128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

// lowMag returns the low 128 bits of a non-negative x.
func (x *wide) lowMag() uint128 {
	var t big.Int
	t.And(&x.n, mask128)
	var hi, lo big.Int
	hi.Rsh(&t, 64)
	lo.And(&t, mask64)
	return uint128{hi: hi.Uint64(), lo: lo.Uint64()}
}

// int128 narrows x to a signed 128-bit integer.
func (x *wide) int128() (int128, bool) {
	var a wide
	a.n.Abs(&x.n)
	m, ok := a.mag()
	if !ok {
		return int128{}, false
	}
	return int128FromMag(x.n.Sign() < 0, m)
}
