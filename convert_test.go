package fixnum

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromInt64(t *testing.T) {
	for _, tc := range []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	} {
		require.Equal(t, tc.want, FromInt64(tc.in).String())
	}
	require.Equal(t, "-7", FromInt32(-7).String())
	require.Equal(t, "7", FromInt(7).String())
}

func TestFromUint64(t *testing.T) {
	d, err := FromUint64(17014118346046923173)
	require.NoError(t, err)
	require.Equal(t, MaxInt, d)

	_, err = FromUint64(17014118346046923174)
	require.True(t, ErrOverflow.Has(err))
	_, err = FromUint64(math.MaxUint64)
	require.True(t, ErrOverflow.Has(err))
}

func TestFromInt128Parts(t *testing.T) {
	d, err := FromInt128Parts(0, 5)
	require.NoError(t, err)
	require.Equal(t, "5", d.String())

	d, err = FromInt128Parts(-1, ^uint64(0)) // -1
	require.NoError(t, err)
	require.Equal(t, "-1", d.String())

	d, err = FromInt128Parts(0, 17014118346046923173)
	require.NoError(t, err)
	require.Equal(t, MaxInt, d)

	_, err = FromInt128Parts(1, 0) // 2^64 exceeds the integer range
	require.True(t, ErrOverflow.Has(err))
}

func TestFromBigInt(t *testing.T) {
	d, err := FromBigInt(big.NewInt(-123))
	require.NoError(t, err)
	require.Equal(t, "-123", d.String())

	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	_, err = FromBigInt(huge)
	require.True(t, ErrOverflow.Has(err))
}

func TestFromFloat64(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{1.5e10, "15000000000"},
		{-0.0078125, "-0.0078125"}, // 2^-7
	} {
		d, err := FromFloat64(tc.in)
		require.NoError(t, err, "%v", tc.in)
		require.Equal(t, tc.want, d.String())
	}
}

func TestFromFloat64Errors(t *testing.T) {
	// the double nearest to 0.1 is not 0.1
	_, err := FromFloat64(0.1)
	require.True(t, ErrPrecisionLoss.Has(err))
	_, err = FromFloat64(1.0 / 3.0)
	require.True(t, ErrPrecisionLoss.Has(err))
	_, err = FromFloat64(math.Exp2(-70)) // needs more than 19 fractional digits
	require.True(t, ErrPrecisionLoss.Has(err))

	_, err = FromFloat64(math.NaN())
	require.True(t, ErrPrecisionLoss.Has(err))
	_, err = FromFloat64(math.Inf(1))
	require.True(t, ErrPrecisionLoss.Has(err))

	_, err = FromFloat64(1e300)
	require.True(t, ErrOverflow.Has(err))
	_, err = FromFloat64(2e19)
	require.True(t, ErrOverflow.Has(err))
}

func TestMustFromFloat64(t *testing.T) {
	require.Equal(t, "0.5", MustFromFloat64(0.5).String())
	require.Panics(t, func() { MustFromFloat64(0.1) })
}

func TestInt64(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1.9", 1},
		{"-1.9", -1},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	} {
		got, err := MustParse(tc.in).Int64()
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := MaxInt.Int64()
	require.True(t, ErrOverflow.Has(err))
	_, err = MustParse("-9223372036854775808.5").Int64()
	require.NoError(t, err) // truncates back into range

	_, err = MustParse("9223372036854775808").Int64()
	require.True(t, ErrOverflow.Has(err))
}

func TestFloat64(t *testing.T) {
	require.Equal(t, 0.0, Zero.Float64())
	require.Equal(t, 1.0, One.Float64())
	require.Equal(t, -1.5, MustParse("-1.5").Float64())
	require.Equal(t, 0.5, MustParse("0.5").Float64())
	require.InDelta(t, 1.0/3.0, MustParse("0.3333333333333333333").Float64(), 1e-15)
}

func TestBigInt(t *testing.T) {
	require.Equal(t, "5", MustParse("5.9").BigInt().String())
	require.Equal(t, "-5", MustParse("-5.9").BigInt().String())
	require.Equal(t, "17014118346046923173", Max.BigInt().String())
}

func TestBigDecimal(t *testing.T) {
	require.Equal(t, "1.5", MustParse("1.5").BigDecimal().String())
	require.Equal(t, "-0.0000000000000000001", SmallestStep.Neg().BigDecimal().String())
	require.Equal(t, "17014118346046923173.1687303715884105727", Max.BigDecimal().String())
}

func TestFromBigDecimal(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"0", "0"},
		{"1.5", "1.5"},
		{"-12.34", "-12.34"},
		{"1e3", "1000"},
		{"0.0000000000000000001", "0.0000000000000000001"},
		{"0.10000000000000000000000", "0.1"}, // deep trailing zeros divide out
	} {
		x, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		d, err := FromBigDecimal(x)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, d.String())
	}

	x, _ := decimal.NewFromString("0.00000000000000000001") // 10^-20
	_, err := FromBigDecimal(x)
	require.True(t, ErrPrecisionLoss.Has(err))

	x, _ = decimal.NewFromString("1e30")
	_, err = FromBigDecimal(x)
	require.True(t, ErrOverflow.Has(err))
}

func TestBigDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1.5", "17014118346046923173.1687303715884105727"} {
		d := MustParse(s)
		back, err := FromBigDecimal(d.BigDecimal())
		require.NoError(t, err)
		require.Equal(t, d, back, s)
	}
}
