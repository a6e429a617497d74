package schema

import (
	"encoding/base64"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/yayaml-go/yayaml/numeric"
)

// A matcher returns the typed value of text and whether text belongs to its
// grammar.
type matcher func(text string) (any, bool)

var errNoMatch = errors.New("text does not match")

func nullMatcher(set ...string) matcher {
	return func(s string) (any, bool) {
		if oneOf(s, set...) {
			return nil, true
		}
		return nil, false
	}
}

func boolMatcher(trues, falses []string) matcher {
	return func(s string) (any, bool) {
		switch {
		case oneOf(s, trues...):
			return true, true
		case oneOf(s, falses...):
			return false, true
		}
		return nil, false
	}
}

var (
	coreNulls   = []string{"null", "Null", "NULL", "~", ""}
	coreTrues   = []string{"true", "True", "TRUE"}
	coreFalses  = []string{"false", "False", "FALSE"}
	yaml11Trues = []string{"y", "Y", "yes", "Yes", "YES", "true", "True", "TRUE", "on", "On", "ON"}
	yaml11False = []string{"n", "N", "no", "No", "NO", "false", "False", "FALSE", "off", "Off", "OFF"}
)

func signed(v *big.Int, neg bool) *big.Int {
	if neg {
		v.Neg(v)
	}
	return v
}

// accum is numeric.Accumulate where a body of only separators is zero.
func accum(body string, base int) *big.Int {
	v, err := numeric.Accumulate(body, base)
	if err != nil {
		return new(big.Int)
	}
	return v
}

// coreInt matches [-+]?[0-9]+ | 0o[0-7]+ | 0x[0-9a-fA-F]+.
func coreInt(s string) (any, bool) {
	sc := &scanner{s: s}
	switch {
	case sc.prefix("0o"):
		start := sc.i
		if sc.run(isOct) == 0 || !sc.eof() {
			return nil, false
		}
		return numeric.BestInt(accum(s[start:], 8)), true
	case sc.prefix("0x"):
		start := sc.i
		if sc.run(isHex) == 0 || !sc.eof() {
			return nil, false
		}
		return numeric.BestInt(accum(s[start:], 16)), true
	}
	neg := sc.sign("-+")
	start := sc.i
	if sc.run(isDec) == 0 || !sc.eof() {
		return nil, false
	}
	return numeric.BestInt(signed(accum(s[start:], 10), neg)), true
}

// jsonInt matches -?(0|[1-9][0-9]*).
func jsonInt(s string) (any, bool) {
	sc := &scanner{s: s}
	neg := sc.sign("-")
	start := sc.i
	if !jsonIntPart(sc) || !sc.eof() {
		return nil, false
	}
	return numeric.BestInt(signed(accum(s[start:], 10), neg)), true
}

func jsonIntPart(sc *scanner) bool {
	if sc.accept('0') {
		return true
	}
	if c := sc.peek(); c < '1' || c > '9' {
		return false
	}
	sc.run(isDec)
	return true
}

// yaml11Int matches the binary, octal, decimal, hex and base 60 forms.
func yaml11Int(s string) (any, bool) {
	v, ok := yaml11BigInt(s)
	if !ok {
		return nil, false
	}
	return numeric.BestInt(v), true
}

func yaml11BigInt(s string) (*big.Int, bool) {
	sc := &scanner{s: s}
	c := sc.peek()
	neg := sc.sign("-+")
	plus := c == '+'
	body := sc.i
	switch {
	case sc.prefix("0b"):
		start := sc.i
		if sc.run(isBinU) == 0 || !sc.eof() {
			return nil, false
		}
		return signed(accum(s[start:], 2), neg), true
	case sc.prefix("0x"):
		start := sc.i
		if sc.run(isHexU) == 0 || !sc.eof() {
			return nil, false
		}
		digits := s[start:]
		if plus {
			return accum(digits, 16), true
		}
		v, err := numeric.TwosComplementHex(digits)
		if err != nil {
			v = new(big.Int)
		}
		if neg && v.Sign() > 0 {
			v.Neg(v)
		}
		return v, true
	case sc.prefix("0o"):
		start := sc.i
		if sc.run(isOctU) == 0 || !sc.eof() {
			return nil, false
		}
		return signed(accum(s[start:], 8), neg), true
	}
	sc.i = body
	if sc.accept('0') {
		if sc.eof() {
			return new(big.Int), true
		}
		start := sc.i
		if sc.run(isOctU) == 0 || !sc.eof() {
			return nil, false
		}
		return signed(accum(s[start:], 8), neg), true
	}
	if c := sc.peek(); c < '1' || c > '9' {
		return nil, false
	}
	sc.run(isDecU)
	if sc.eof() {
		return signed(accum(s[body:], 10), neg), true
	}
	if !sc.sexagesimalTail() || !sc.eof() {
		return nil, false
	}
	v, err := numeric.ParseSexagesimal(s[body:])
	if err != nil {
		return nil, false
	}
	return signed(v, neg), true
}

func parseFloatText(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// specialFloat matches [-+]?\.(inf|Inf|INF) and \.(nan|NaN|NAN).
func specialFloat(s string) (float64, bool) {
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), true
	}
	return 0, false
}

// exponent consumes [eE] followed by a sign from signs (or none when
// optional) and digits. It reports false only on a malformed exponent.
func (sc *scanner) exponent(signRequired bool) bool {
	if !sc.acceptAny("eE") {
		return true
	}
	if !sc.acceptAny("-+") && signRequired {
		return false
	}
	return sc.run(isDec) > 0
}

// coreFloat matches [-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?
// and the special values.
func coreFloat(s string) (any, bool) {
	if f, ok := specialFloat(s); ok {
		return f, true
	}
	sc := &scanner{s: s}
	sc.sign("-+")
	if sc.accept('.') {
		if sc.run(isDec) == 0 {
			return nil, false
		}
	} else {
		if sc.run(isDec) == 0 {
			return nil, false
		}
		if sc.accept('.') {
			sc.run(isDec)
		}
	}
	if !sc.exponent(false) || !sc.eof() {
		return nil, false
	}
	return parseFloatText(s), true
}

// jsonFloat matches -?(0|[1-9][0-9]*)(\.[0-9]*)?([eE][-+]?[0-9]+)?.
func jsonFloat(s string) (any, bool) {
	sc := &scanner{s: s}
	sc.sign("-")
	if !jsonIntPart(sc) {
		return nil, false
	}
	if sc.accept('.') {
		sc.run(isDec)
	}
	if !sc.exponent(false) || !sc.eof() {
		return nil, false
	}
	return parseFloatText(strings.TrimSuffix(s, ".")), true
}

// jsonTaggedFloat also accepts the canonical special spellings.
func jsonTaggedFloat(s string) (any, bool) {
	switch s {
	case "0":
		return 0.0, true
	case ".inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	return jsonFloat(s)
}

// yaml11Float matches [-+]?([0-9][0-9_]*)?\.[0-9_]*([eE][-+][0-9]+)?, the
// base 60 form with a fraction and the special values. The mantissa must
// hold at least one digit.
func yaml11Float(s string) (any, bool) {
	if f, ok := specialFloat(s); ok {
		return f, true
	}
	sc := &scanner{s: s}
	neg := sc.sign("-+")
	body := sc.i
	intDigits := 0
	if isDec(sc.peek()) && !sc.eof() {
		intDigits = sc.run(isDecU)
		if sc.peek() == ':' {
			if !sc.sexagesimalTail() || !sc.accept('.') {
				return nil, false
			}
			sc.run(isDecU)
			if !sc.eof() {
				return nil, false
			}
			f, err := numeric.ParseSexagesimalFloat(s[body:])
			if err != nil {
				return nil, false
			}
			if neg {
				f = -f
			}
			return f, true
		}
	}
	if !sc.accept('.') {
		return nil, false
	}
	frac := sc.i
	sc.run(isDecU)
	fracDigits := strings.Count(s[frac:sc.i], "_")
	fracDigits = (sc.i - frac) - fracDigits
	if intDigits-strings.Count(s[body:body+intDigits], "_") == 0 && fracDigits == 0 {
		return nil, false
	}
	if !sc.exponent(true) || !sc.eof() {
		return nil, false
	}
	clean := strings.ReplaceAll(s, "_", "")
	clean = strings.Replace(clean, ".e", ".0e", 1)
	clean = strings.Replace(clean, ".E", ".0E", 1)
	if strings.HasSuffix(clean, ".") {
		clean += "0"
	}
	return parseFloatText(clean), true
}

// yaml11Timestamp matches YYYY-MM-DD or the full date-time form
// YYYY-M?M-D?D([Tt]|[ \t]+)H?H:MM:SS(\.F*)?([ \t]*(Z|[-+]H?H(:MM)?))?.
// A missing zone means UTC.
func yaml11Timestamp(s string) (any, bool) {
	sc := &scanner{s: s}
	num := func(minDigits, maxDigits int) (int, bool) {
		start := sc.i
		for sc.i-start < maxDigits && isDec(sc.peek()) && !sc.eof() {
			sc.i++
		}
		if sc.i-start < minDigits {
			return 0, false
		}
		n, _ := strconv.Atoi(s[start:sc.i])
		return n, true
	}
	year, ok := num(4, 4)
	if !ok || !sc.accept('-') {
		return nil, false
	}
	dateStart := sc.i
	month, ok := num(1, 2)
	if !ok || !sc.accept('-') {
		return nil, false
	}
	day, ok := num(1, 2)
	if !ok {
		return nil, false
	}
	if sc.eof() {
		// the date only form requires two digit month and day
		if sc.i-dateStart != 5 {
			return nil, false
		}
		return mkTime(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	if !sc.acceptAny("Tt") {
		if sc.run(isSpaceTab) == 0 {
			return nil, false
		}
	}
	hour, ok := num(1, 2)
	if !ok || !sc.accept(':') {
		return nil, false
	}
	minute, ok := num(2, 2)
	if !ok || !sc.accept(':') {
		return nil, false
	}
	second, ok := num(2, 2)
	if !ok {
		return nil, false
	}
	nanos := 0
	if sc.accept('.') {
		start := sc.i
		sc.run(isDec)
		frac := s[start:sc.i]
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		nanos, _ = strconv.Atoi(frac)
	}
	loc := time.UTC
	if !sc.eof() {
		sc.run(isSpaceTab)
		switch c := sc.peek(); {
		case sc.accept('Z'):
		case c == '+' || c == '-':
			sc.i++
			tzh, ok := num(1, 2)
			if !ok {
				return nil, false
			}
			tzm := 0
			if sc.accept(':') {
				if tzm, ok = num(2, 2); !ok {
					return nil, false
				}
			}
			off := (tzh*60 + tzm) * 60
			if c == '-' {
				off = -off
			}
			loc = time.FixedZone("", off)
		default:
			return nil, false
		}
	}
	if !sc.eof() {
		return nil, false
	}
	return mkTime(year, month, day, hour, minute, second, nanos, loc)
}

func mkTime(year, month, day, hour, minute, second, nanos int, loc *time.Location) (any, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return nil, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc)
	if t.Day() != day {
		return nil, false
	}
	return t, true
}

// binary decodes base64 text after removing whitespace.
func binary(s string) (any, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	d, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// strict turns a matcher into a tag function that fails on a mismatch.
func strict(m matcher) func(string) (any, error) {
	return func(s string) (any, error) {
		v, ok := m(s)
		if !ok {
			return nil, errNoMatch
		}
		return v, nil
	}
}
