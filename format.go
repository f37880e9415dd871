package fixnum

import (
	"fmt"
	"strconv"
	"strings"
)

// NoPrecision selects the natural rendering: the fractional part is
// printed exactly, with trailing zeros trimmed and the point dropped for
// integers.
const NoPrecision = -1

// Alignment places a value inside a fixed-width field.
type Alignment uint8

const (
	// AlignEnd pads on the left, the conventional alignment for numbers.
	AlignEnd Alignment = iota
	// AlignStart pads on the right.
	AlignStart
	// AlignCenter splits the padding, favouring the right side.
	AlignCenter
)

// FormatSpec controls the rendering of a decimal.
//
// The zero value renders the value rounded to zero fractional digits;
// use [NoPrecision] for the natural rendering.
type FormatSpec struct {
	// Precision is the number of fractional digits. The value is rounded
	// half away from zero at that position; positions beyond the 19th are
	// zero-padded. NoPrecision trims trailing zeros instead.
	Precision int
	// Grouping inserts an underscore every three digits, outward from the
	// decimal point in both directions.
	Grouping bool
	// Width is the minimum rendered width; shorter results are padded
	// with Fill according to Align.
	Width int
	// Fill is the padding rune. Zero means space.
	Fill rune
	// Align selects the padding side.
	Align Alignment
	// ForceSign prints a leading plus for non-negative values.
	ForceSign bool
}

// String returns the natural rendering of d: sign, integer digits, and
// the exact fractional part with trailing zeros trimmed.
//
// String implements the [fmt.Stringer] interface.
func (d Decimal) String() string {
	return d.Text(FormatSpec{Precision: NoPrecision})
}

// Text renders d according to spec.
func (d Decimal) Text(spec FormatSpec) string {
	s := d.text(spec.Precision, spec.Grouping, spec.ForceSign)
	return padText(s, spec.Width, spec.Fill, spec.Align)
}

// text renders the number itself, without field padding.
func (d Decimal) text(prec int, grouping, forceSign bool) string {
	v := d
	if prec >= 0 && prec < scaleDigits {
		v = d.RoundTo(prec)
	}

	mag := v.raw.abs()
	ip, fr := mag.divMod64(scaleUnit)

	// The integer part of any representable value fits a uint64.
	intPart := strconv.FormatUint(ip.lo, 10)

	var fb [scaleDigits]byte
	for i := scaleDigits - 1; i >= 0; i-- {
		fb[i] = byte('0' + fr%10)
		fr /= 10
	}
	frac := fb[:]
	if prec < 0 {
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
	} else if prec < scaleDigits {
		frac = fb[:prec]
	}

	var b strings.Builder
	b.Grow(len(intPart) + len(frac) + 8)
	switch {
	case v.raw.isNeg():
		b.WriteByte('-')
	case forceSign:
		b.WriteByte('+')
	}
	if grouping {
		writeGroupedInt(&b, intPart)
	} else {
		b.WriteString(intPart)
	}
	if len(frac) > 0 || prec > scaleDigits {
		b.WriteByte('.')
		if grouping {
			writeGroupedFrac(&b, string(frac), prec)
		} else {
			b.Write(frac)
			for i := scaleDigits; i < prec; i++ {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// writeGroupedInt writes integer digits with an underscore every three
// digits, counted from the decimal point leftward.
func writeGroupedInt(b *strings.Builder, s string) {
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(s[i : i+3])
	}
}

// writeGroupedFrac writes fractional digits with an underscore every
// three digits, counted from the decimal point rightward, zero-padding
// to prec positions when prec exceeds the stored 19.
func writeGroupedFrac(b *strings.Builder, s string, prec int) {
	n := len(s)
	if prec > n {
		n = prec
	}
	for i := 0; i < n; i++ {
		if i > 0 && i%3 == 0 {
			b.WriteByte('_')
		}
		if i < len(s) {
			b.WriteByte(s[i])
		} else {
			b.WriteByte('0')
		}
	}
}

// padText pads s to width with the fill rune on the side chosen by align.
func padText(s string, width int, fill rune, align Alignment) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	if fill == 0 {
		fill = ' '
	}
	switch align {
	case AlignStart:
		return s + strings.Repeat(string(fill), pad)
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
	default:
		return strings.Repeat(string(fill), pad) + s
	}
}

// Format implements the [fmt.Formatter] interface.
// The supported verbs are:
//
//	%v, %s  natural rendering
//	%q      natural rendering in double quotes
//	%f, %F  fixed precision, taken from the format string
//
// The '+' flag forces a sign, '-' pads on the right, and '#' turns on
// digit grouping. Width is honoured for all verbs.
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q', 'f', 'F':
		// ok
	default:
		fmt.Fprintf(state, "%%!%c(fixnum.Decimal=%s)", verb, d.String())
		return
	}

	prec := NoPrecision
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			prec = p
		}
	}
	s := d.text(prec, state.Flag('#'), state.Flag('+'))
	if verb == 'q' {
		s = `"` + s + `"`
	}

	width := 0
	if w, ok := state.Width(); ok {
		width = w
	}
	align := AlignEnd
	if state.Flag('-') {
		align = AlignStart
	}
	state.Write([]byte(padText(s, width, ' ', align)))
}
