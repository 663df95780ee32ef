package schema

import (
	"fmt"

	"go.briarwood.dev/der"
	"go.briarwood.dev/der/tlv"
)

// GeneralizedTime is an ASN.1 GeneralizedTime in its canonical DER form:
// YYYYMMDDHHMMSS[.fff]Z (UTC only). See spec.md §4.7.
//
// GeneralizedTime tolerates leap seconds (Second up to 61) and does not
// define a total ordering: two GeneralizedTime values must not be compared
// for ordering by callers of this package.
type GeneralizedTime struct {
	Year              int
	Month             int
	Day               int
	Hour              int
	Minute            int
	Second            int
	FractionalSeconds float64
}

// DefaultIdentifier returns the UNIVERSAL, primitive, tag-number-24
// identifier GeneralizedTime is encoded with absent a tagging override.
func (GeneralizedTime) DefaultIdentifier() der.Identifier {
	return der.NewIdentifier(der.TagGeneralizedTime)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// validate checks the field-range invariants of spec.md §4.7.
func (t GeneralizedTime) validate() error {
	if t.Year < 0 || t.Year > 9999 {
		return der.NewError(der.KindInvalid, "GeneralizedTime year out of range [0,9999]")
	}
	if t.Month < 1 || t.Month > 12 {
		return der.NewError(der.KindInvalid, "GeneralizedTime month out of range [1,12]")
	}
	if t.Day < 1 || t.Day > daysInMonth(t.Month, t.Year) {
		return der.NewError(der.KindInvalid, "GeneralizedTime day out of range for month/year")
	}
	if t.Hour < 0 || t.Hour > 23 {
		return der.NewError(der.KindInvalid, "GeneralizedTime hour out of range [0,23]")
	}
	if t.Minute < 0 || t.Minute > 59 {
		return der.NewError(der.KindInvalid, "GeneralizedTime minute out of range [0,59]")
	}
	if t.Second < 0 || t.Second > 61 {
		return der.NewError(der.KindInvalid, "GeneralizedTime second out of range [0,61]")
	}
	if t.FractionalSeconds < 0 || t.FractionalSeconds >= 1 {
		return der.NewError(der.KindInvalid, "GeneralizedTime fractional seconds out of range [0,1)")
	}
	return nil
}

// canonicalString renders t in its canonical DER encoding,
// YYYYMMDDHHMMSS[.fff]Z.
func (t GeneralizedTime) canonicalString() string {
	base := fmt.Sprintf("%04d%02d%02d%02d%02d%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	if t.FractionalSeconds == 0 {
		return base + "Z"
	}
	frac := fmt.Sprintf("%.10f", t.FractionalSeconds)
	frac = frac[1:] // drop the leading "0" before the decimal point
	for len(frac) > 0 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return base + frac + "Z"
}

// DecodeNode decodes n's content as a GeneralizedTime. Lexing the canonical
// string form is delegated to parseCanonicalString; this package implements
// the wire format directly rather than relying on a host time library, per
// spec.md §4.7's note that the detailed lexer is out of core scope but must
// still be provided by an implementation.
func (t *GeneralizedTime) DecodeNode(n tlv.Node) error {
	if n.Identifier != t.DefaultIdentifier() {
		return der.NewError(der.KindUnexpectedType, "expected "+t.DefaultIdentifier().String())
	}
	if n.IsConstructed() {
		return der.NewError(der.KindUnexpectedType, "GeneralizedTime must be primitive")
	}
	decoded, err := parseCanonicalString(string(n.Content()))
	if err != nil {
		return err
	}
	if err := decoded.validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// EncodeNode appends t to s under the given identifier.
func (t GeneralizedTime) EncodeNode(s *tlv.Serializer, id der.Identifier) error {
	if err := t.validate(); err != nil {
		return err
	}
	s.AppendPrimitive(id, []byte(t.canonicalString()))
	return nil
}

// parseCanonicalString parses the canonical DER GeneralizedTime form
// YYYYMMDDHHMMSS[.fff]Z. It rejects any other form (no fractional-second
// omission of seconds, no non-UTC zone, no BER local-time variants).
func parseCanonicalString(s string) (GeneralizedTime, error) {
	if len(s) < 15 || s[len(s)-1] != 'Z' {
		return GeneralizedTime{}, der.NewError(der.KindInvalid, "GeneralizedTime must be in canonical UTC form")
	}
	body := s[:len(s)-1]
	digits := body
	frac := ""
	if i := indexByte(body, '.'); i >= 0 {
		digits = body[:i]
		frac = body[i+1:]
		if frac == "" || frac[len(frac)-1] == '0' {
			return GeneralizedTime{}, der.NewError(der.KindInvalid, "GeneralizedTime fractional part must be non-empty without trailing zeros")
		}
	}
	if len(digits) != 14 {
		return GeneralizedTime{}, der.NewError(der.KindInvalid, "GeneralizedTime must have 14 integer digits")
	}
	fields := [6]int{}
	widths := [6]int{4, 2, 2, 2, 2, 2}
	pos := 0
	for i, w := range widths {
		v, err := parseDigits(digits[pos : pos+w])
		if err != nil {
			return GeneralizedTime{}, der.NewError(der.KindInvalid, "GeneralizedTime contains a non-digit field")
		}
		fields[i] = v
		pos += w
	}
	fractional := 0.0
	if frac != "" {
		v, err := parseDigits(frac)
		if err != nil {
			return GeneralizedTime{}, der.NewError(der.KindInvalid, "GeneralizedTime fractional part contains a non-digit")
		}
		scale := 1.0
		for i := 0; i < len(frac); i++ {
			scale *= 10
		}
		fractional = float64(v) / scale
	}
	return GeneralizedTime{
		Year: fields[0], Month: fields[1], Day: fields[2],
		Hour: fields[3], Minute: fields[4], Second: fields[5],
		FractionalSeconds: fractional,
	}, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func parseDigits(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a digit: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
