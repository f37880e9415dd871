package fixnum

import "strings"

// Parse converts a string to a decimal.
//
// The input must be a decimal number in one of the forms:
//
//	1234
//	-12.34
//	+.5
//	12.34e-5
//	1_234_567.890_1
//
// An optional sign is followed by integer digits, an optional point with
// fractional digits, and an optional exponent. Underscores between digits
// are ignored. The exponent shifts the decimal point; after shifting, at
// most 19 significant fractional digits may remain, and trailing zeros
// beyond the 19th position are dropped exactly.
//
// Parse returns an error if:
//   - the input contains no digits ([ErrEmptyInput], [ErrInvalidCharacter]);
//   - the input contains a byte outside the grammar ([ErrInvalidCharacter]);
//   - the exponent magnitude exceeds 38 ([ErrExponentOutOfRange]);
//   - more than 19 significant fractional digits remain
//     ([ErrTooManyFractionalDigits]);
//   - the value is outside the range [Min, Max] ([ErrOverflow]).
func Parse(s string) (Decimal, error) {
	raw, err := parseRaw(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{raw}, nil
}

// expLimit is the largest accepted exponent magnitude. Shifting a nonzero
// mantissa by more than 38 decimal places always leaves the representable
// range or the representable precision.
const expLimit = 38

func parseRaw(s string) (int128, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return int128{}, ErrEmptyInput.New("%q", s)
	}

	pos := 0
	neg := false
	switch t[0] {
	case '+':
		pos++
	case '-':
		neg = true
		pos++
	}

	var (
		mant     uint128
		frac     int  // fractional digits consumed
		shift    int  // trailing zeros dropped after the mantissa saturated
		sticky   bool // a nonzero digit was dropped, the value is unrepresentable
		inFrac   bool
		sawDigit bool
		expPos   = -1
	)

mantissa:
	for ; pos < len(t); pos++ {
		switch c := t[pos]; {
		case c >= '0' && c <= '9':
			sawDigit = true
			m, ok := mant.fsa(uint64(c - '0'))
			switch {
			case ok:
				mant = m
			case c == '0':
				shift++
			default:
				sticky = true
			}
			if inFrac {
				frac++
			}
		case c == '_':
			// grouping, ignored
		case c == '.':
			if inFrac {
				return int128{}, ErrInvalidCharacter.New("unexpected %q in %q", ".", s)
			}
			inFrac = true
		case c == 'e' || c == 'E':
			expPos = pos + 1
			break mantissa
		default:
			return int128{}, ErrInvalidCharacter.New("unexpected %q in %q", string(c), s)
		}
	}
	if !sawDigit {
		return int128{}, ErrInvalidCharacter.New("missing digits in %q", s)
	}
	if inFrac && frac == 0 {
		return int128{}, ErrInvalidCharacter.New("missing fraction digits in %q", s)
	}

	exp := 0
	if expPos >= 0 {
		var err error
		exp, err = parseExponent(s, t, expPos)
		if err != nil {
			return int128{}, err
		}
	}

	// effScale is the number of fractional digits the mantissa carries
	// once the exponent and dropped trailing zeros are applied.
	effScale := frac - exp - shift
	if sticky {
		if effScale > scaleDigits {
			return int128{}, ErrTooManyFractionalDigits.New("%q", s)
		}
		return int128{}, ErrOverflow.New("%q", s)
	}
	if mant.isZero() {
		return int128{}, nil
	}
	switch k := scaleDigits - effScale; {
	case k > expLimit:
		return int128{}, ErrOverflow.New("%q", s)
	case k > 0:
		var ok bool
		mant, ok = mant.lsh(k)
		if !ok {
			return int128{}, ErrOverflow.New("%q", s)
		}
	case k < -expLimit:
		return int128{}, ErrTooManyFractionalDigits.New("%q", s)
	case k < 0:
		q, r := mant.rshDown(-k)
		if !r.isZero() {
			return int128{}, ErrTooManyFractionalDigits.New("%q", s)
		}
		mant = q
	}

	raw, ok := int128FromMag(neg, mant)
	if !ok {
		return int128{}, ErrOverflow.New("%q", s)
	}
	return raw, nil
}

// parseExponent reads the digits following an e or E marker.
// pos points just past the marker.
func parseExponent(s, t string, pos int) (int, error) {
	if pos == len(t) {
		return 0, ErrInvalidCharacter.New("missing exponent digits in %q", s)
	}
	neg := false
	switch t[pos] {
	case '+':
		pos++
	case '-':
		neg = true
		pos++
	}
	exp, sawDigit := 0, false
	for ; pos < len(t); pos++ {
		c := t[pos]
		if c < '0' || c > '9' {
			return 0, ErrInvalidCharacter.New("unexpected %q in %q", string(c), s)
		}
		sawDigit = true
		if exp <= expLimit {
			exp = exp*10 + int(c-'0')
		}
	}
	if !sawDigit {
		return 0, ErrInvalidCharacter.New("missing exponent digits in %q", s)
	}
	if exp > expLimit {
		return 0, ErrExponentOutOfRange.New("%q", s)
	}
	if neg {
		exp = -exp
	}
	return exp, nil
}
