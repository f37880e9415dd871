package fixnum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"0", "0"},
		{"-0", "0"},
		{"1", "1"},
		{"-1.5", "-1.5"},
		{"0.5", "0.5"},
		{"1.50", "1.5"},
		{"1.000", "1"},
		{"0.0000000000000000001", "0.0000000000000000001"},
		{"12345678901234567890e-1", "1234567890123456789"},
	} {
		require.Equal(t, tc.want, MustParse(tc.in).String())
	}
}

func TestTextPrecision(t *testing.T) {
	pi := MustParse("3.14159")
	for _, tc := range []struct {
		prec int
		want string
	}{
		{NoPrecision, "3.14159"},
		{0, "3"},
		{1, "3.1"},
		{2, "3.14"},
		{3, "3.142"}, // rounded half away from zero
		{5, "3.14159"},
		{7, "3.1415900"},
		{19, "3.1415900000000000000"},
		{21, "3.141590000000000000000"},
	} {
		got := pi.Text(FormatSpec{Precision: tc.prec})
		require.Equal(t, tc.want, got, "precision %d", tc.prec)
	}

	require.Equal(t, "1.01", MustParse("1.005").Text(FormatSpec{Precision: 2}))
	require.Equal(t, "-1.01", MustParse("-1.005").Text(FormatSpec{Precision: 2}))
	require.Equal(t, "1", MustParse("0.5").Text(FormatSpec{Precision: 0}))
	require.Equal(t, "0", MustParse("-0.4").Text(FormatSpec{Precision: 0})) // no negative zero
	require.Equal(t, "0.00", Zero.Text(FormatSpec{Precision: 2}))
}

func TestTextGrouping(t *testing.T) {
	for _, tc := range []struct {
		in   string
		spec FormatSpec
		want string
	}{
		{"7654321.1234567", FormatSpec{Precision: NoPrecision, Grouping: true}, "7_654_321.123_456_7"},
		{"1234.5", FormatSpec{Precision: NoPrecision, Grouping: true}, "1_234.5"},
		{"123", FormatSpec{Precision: NoPrecision, Grouping: true}, "123"},
		{"-1234567", FormatSpec{Precision: NoPrecision, Grouping: true}, "-1_234_567"},
		{"0.123456", FormatSpec{Precision: NoPrecision, Grouping: true}, "0.123_456"},
		{"1.5", FormatSpec{Precision: 6, Grouping: true}, "1.500_000"},
		{
			"17014118346046923173.1687303715884105727",
			FormatSpec{Precision: NoPrecision, Grouping: true},
			"17_014_118_346_046_923_173.168_730_371_588_410_572_7",
		},
	} {
		require.Equal(t, tc.want, MustParse(tc.in).Text(tc.spec), "%+v", tc.spec)
	}
}

func TestTextSignWidthAlign(t *testing.T) {
	d := MustParse("1.5")
	for _, tc := range []struct {
		spec FormatSpec
		want string
	}{
		{FormatSpec{Precision: NoPrecision, ForceSign: true}, "+1.5"},
		{FormatSpec{Precision: NoPrecision, Width: 8}, "     1.5"},
		{FormatSpec{Precision: NoPrecision, Width: 8, Align: AlignStart}, "1.5     "},
		{FormatSpec{Precision: NoPrecision, Width: 7, Align: AlignCenter}, "  1.5  "},
		{FormatSpec{Precision: NoPrecision, Width: 8, Align: AlignCenter}, "  1.5   "},
		{FormatSpec{Precision: NoPrecision, Width: 8, Fill: '*'}, "*****1.5"},
		{FormatSpec{Precision: NoPrecision, Width: 2}, "1.5"},
		{FormatSpec{Precision: 2, Width: 6, Fill: '0'}, "001.50"},
	} {
		require.Equal(t, tc.want, d.Text(tc.spec), "%+v", tc.spec)
	}

	require.Equal(t, "-1.5", MustParse("-1.5").Text(FormatSpec{Precision: NoPrecision, ForceSign: true}))
}

func TestFormatVerbs(t *testing.T) {
	d := MustParse("7654321.1234567")
	for _, tc := range []struct{ format, want string }{
		{"%v", "7654321.1234567"},
		{"%s", "7654321.1234567"},
		{"%q", `"7654321.1234567"`},
		{"%f", "7654321.1234567"},
		{"%.2f", "7654321.12"},
		{"%.0f", "7654321"},
		{"%20s", "     7654321.1234567"},
		{"%-20s|", "7654321.1234567     |"},
		{"%#v", "7_654_321.123_456_7"},
		{"%#.9f", "7_654_321.123_456_700"},
		{"%d", "%!d(fixnum.Decimal=7654321.1234567)"},
	} {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, d), tc.format)
	}

	require.Equal(t, "+0.5", fmt.Sprintf("%+v", MustParse("0.5")))
	require.Equal(t, `    "1.5"`, fmt.Sprintf("%9q", MustParse("1.5")))
}
