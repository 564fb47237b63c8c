package basecalc

import (
	"math"
	"strings"
)

// Digits is the digit alphabet. The value of a digit is its index in Digits.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MinBase and MaxBase bound the bases accepted by ToBase10 and FromBase10.
const (
	MinBase = 2
	MaxBase = len(Digits) - 1
)

// caseless is the largest base in which letters are case-insensitive. Digit
// strings in bases up to caseless are folded to lower case before scanning.
const caseless = 36

// MaxFracDigits is the maximum number of digits FromBase10 writes after the
// radix point.
const MaxFracDigits = 15

// CheckBase returns a *BaseError if base is outside [MinBase, MaxBase].
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &BaseError{Base: base}
	}
	return nil
}

// ToBase10 interprets digits as a number in the given base. digits may contain
// at most one radix point. The strings "nan" and "inf" give NaN and +Inf in any
// base.
func ToBase10(digits string, base int) (float64, error) {
	if err := CheckBase(base); err != nil {
		return 0, err
	}
	if base <= caseless {
		digits = strings.ToLower(digits)
	}
	switch digits {
	case "nan":
		return math.NaN(), nil
	case "inf":
		return math.Inf(1), nil
	}
	whole, frac := digits, ""
	if k := strings.IndexByte(digits, '.'); k >= 0 {
		whole, frac = digits[:k], digits[k+1:]
		if strings.IndexByte(frac, '.') >= 0 {
			return 0, &DecimalPointError{Digits: digits}
		}
	}
	b := float64(base)
	var r float64
	for i, c := range whole {
		d := digitValue(c)
		if d < 0 || d >= base {
			return 0, &DigitError{Digits: digits, Digit: c, Base: base, Col: i + 1}
		}
		r = r*b + float64(d)
	}
	for i, c := range frac {
		d := digitValue(c)
		if d < 0 || d >= base {
			return 0, &DigitError{Digits: digits, Digit: c, Base: base, Col: len(whole) + i + 2}
		}
		r += float64(d) * math.Pow(b, -float64(i+1))
	}
	return r, nil
}

// FromBase10 renders x in the given base. NaN and infinities render as "nan"
// and "inf". At most MaxFracDigits fractional digits are written, and the
// radix point is omitted when there are none.
func FromBase10(x float64, base int) (string, error) {
	if err := CheckBase(base); err != nil {
		return "", err
	}
	switch {
	case math.IsNaN(x):
		return "nan", nil
	case math.IsInf(x, 0):
		return "inf", nil
	}
	var s strings.Builder
	if x < 0 {
		s.WriteByte('-')
		x = -x
	}
	b := float64(base)
	ip := math.Floor(x)
	frac := x - ip
	if ip == 0 {
		s.WriteByte('0')
	} else {
		var v []byte
		for ip > 0 {
			d := math.Mod(ip, b)
			v = append(v, Digits[int(d)])
			// ip-d is a multiple of b, so the quotient is exact while it fits.
			ip = (ip - d) / b
		}
		for i := len(v) - 1; i >= 0; i-- {
			s.WriteByte(v[i])
		}
	}
	if frac > 0 {
		s.WriteByte('.')
		for i := 0; i < MaxFracDigits && frac != 0; i++ {
			frac *= b
			d := math.Floor(frac)
			s.WriteByte(Digits[int(d)])
			frac -= d
		}
	}
	return s.String(), nil
}

// Format renders a result in the output base. It is the same as FromBase10.
func Format(x float64, base int) (string, error) {
	return FromBase10(x, base)
}

// digitValue gets the value of a digit, or -1 if r is not in Digits.
func digitValue(r rune) int {
	if r >= 0x80 {
		return -1
	}
	return strings.IndexByte(Digits, byte(r))
}
