package fixnum

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/errs"
)

// Decimal is a fixed-point decimal number carrying 19 fractional digits.
// The numeric value is raw / 10^19, where raw is a signed 128-bit integer.
// The zero value is ready to use and represents 0.
//
// Decimal is a plain 16-byte value: copy it, compare it with Cmp or Equal,
// use it as a map key. Arithmetic never allocates on the fast path.
type Decimal struct {
	raw int128
}

var (
	// Zero is the decimal 0.
	Zero = Decimal{}

	// One is the decimal 1.
	One = Decimal{int128{lo: scaleUnit}}

	// SmallestStep is the smallest positive representable value, 10^-19.
	SmallestStep = Decimal{int128{lo: 1}}

	// Max is the largest representable value,
	// 17_014_118_346_046_923_173.168_730_371_588_410_572_7.
	Max = Decimal{maxInt128}

	// Min is the smallest representable value,
	// -17_014_118_346_046_923_173.168_730_371_588_410_572_8.
	Min = Decimal{minInt128}

	// MaxInt is the largest representable integer, 17_014_118_346_046_923_173.
	MaxInt = Decimal{int128{hi: 9_223_372_036_854_775_807, lo: 16_759_440_357_825_445_888}}

	// MinInt is the smallest representable integer, -17_014_118_346_046_923_173.
	MinInt = Decimal{int128{hi: -9_223_372_036_854_775_808, lo: 1_687_303_715_884_105_728}}

	// Ln2 is the natural logarithm of 2, truncated to 19 fractional digits.
	Ln2 = Decimal{int128{lo: 6_931_471_805_599_453_094}}
)

// FromRaw assembles a decimal directly from the two words of its raw
// 128-bit integer. The resulting value is (hi*2^64 + lo) / 10^19 in two's
// complement. FromRaw is the inverse of [Decimal.Raw] and is what generated
// constants use (see cmd/fixnumgen).
func FromRaw(hi int64, lo uint64) Decimal {
	return Decimal{int128{hi: hi, lo: lo}}
}

// Raw returns the two words of the raw 128-bit integer backing d.
func (d Decimal) Raw() (hi int64, lo uint64) {
	return d.raw.hi, d.raw.lo
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.raw.isZero()
}

// IsNeg reports whether d is less than 0.
func (d Decimal) IsNeg() bool {
	return d.raw.isNeg()
}

// IsPos reports whether d is greater than 0.
func (d Decimal) IsPos() bool {
	return d.raw.sign() > 0
}

// IsInt reports whether d has no fractional part.
func (d Decimal) IsInt() bool {
	_, r := d.raw.abs().divMod64(scaleUnit)
	return r == 0
}

// Sign returns -1 if d is negative, 0 if zero, and 1 if positive.
func (d Decimal) Sign() int {
	return d.raw.sign()
}

// Cmp compares d and e and returns -1, 0, or 1.
func (d Decimal) Cmp(e Decimal) int {
	return d.raw.cmp(e.raw)
}

// Equal reports whether d and e represent the same value.
func (d Decimal) Equal(e Decimal) bool {
	return d.raw == e.raw
}

// Less reports whether d is less than e.
func (d Decimal) Less(e Decimal) bool {
	return d.raw.cmp(e.raw) < 0
}

// MinOf returns the smaller of d and e.
func MinOf(d, e Decimal) Decimal {
	if d.raw.cmp(e.raw) <= 0 {
		return d
	}
	return e
}

// MaxOf returns the larger of d and e.
func MaxOf(d, e Decimal) Decimal {
	if d.raw.cmp(e.raw) >= 0 {
		return d
	}
	return e
}

// Clamp returns d limited to the range [lo, hi].
// If lo is greater than hi, Clamp returns lo.
func (d Decimal) Clamp(lo, hi Decimal) Decimal {
	return MaxOf(lo, MinOf(d, hi))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// AppendText appends the text of d to b and returns the extended slice.
// The error is always nil and exists to satisfy text-appending interfaces.
func (d Decimal) AppendText(b []byte) ([]byte, error) {
	return append(b, d.String()...), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
// The value is encoded as a JSON string to survive decoders that read
// numbers into float64.
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the [encoding/json.Unmarshaler] interface.
// Both string-encoded and bare number forms are accepted.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The encoding is the raw integer as 16 big-endian bytes in two's complement.
func (d Decimal) MarshalBinary() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], uint64(d.raw.hi))
	binary.BigEndian.PutUint64(b[8:], d.raw.lo)
	return b, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return errs.New("fixnum: invalid binary length %d", len(data))
	}
	d.raw.hi = int64(binary.BigEndian.Uint64(data[:8]))
	d.raw.lo = binary.BigEndian.Uint64(data[8:])
	return nil
}

// Value implements the [driver.Valuer] interface.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// float64 sources are converted exactly and fail with [ErrPrecisionLoss]
// if the stored value does not fit 19 fractional digits.
func (d *Decimal) Scan(value any) error {
	var v Decimal
	var err error
	switch value := value.(type) {
	case string:
		v, err = Parse(value)
	case []byte:
		v, err = Parse(string(value))
	case int64:
		v = FromInt64(value)
	case float64:
		v, err = FromFloat64(value)
	default:
		err = fmt.Errorf("fixnum: failed to convert %T to Decimal", value)
	}
	if err != nil {
		return err
	}
	*d = v
	return nil
}
