package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrDigit = errors.New("invalid digit")
	ErrEmpty = errors.New("no digits")
)

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

// Accumulate folds digits into acc = acc*base + digit, skipping '_'
// separators.
func Accumulate(digits string, base int) (*big.Int, error) {
	if base < 2 || base > 36 {
		return nil, fmt.Errorf("base %d out of range", base)
	}
	var (
		acc = new(big.Int)
		b   = big.NewInt(int64(base))
		d   = new(big.Int)
		n   int
	)
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '_' {
			continue
		}
		v := digitVal(c)
		if v >= base {
			return nil, fmt.Errorf("%w %q in base %d literal %q", ErrDigit, c, base, digits)
		}
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(v)))
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("%w in %q", ErrEmpty, digits)
	}
	return acc, nil
}

// ParseSexagesimal evaluates an unsigned base 60 integer "a:b:c" as
// ((a*60)+b)*60+c.
func ParseSexagesimal(s string) (*big.Int, error) {
	parts := strings.Split(s, ":")
	acc := new(big.Int)
	sixty := big.NewInt(60)
	for _, p := range parts {
		v, err := Accumulate(p, 10)
		if err != nil {
			return nil, err
		}
		acc.Mul(acc, sixty)
		acc.Add(acc, v)
	}
	return acc, nil
}

// ParseSexagesimalFloat is ParseSexagesimal where the last component may
// carry a fraction, as in "1:30.5".
func ParseSexagesimalFloat(s string) (float64, error) {
	parts := strings.Split(s, ":")
	var acc float64
	for i, p := range parts {
		p = strings.ReplaceAll(p, "_", "")
		var (
			v   float64
			err error
		)
		if i == len(parts)-1 {
			if strings.HasSuffix(p, ".") {
				p += "0"
			}
			v, err = strconv.ParseFloat(p, 64)
		} else {
			var u uint64
			u, err = strconv.ParseUint(p, 10, 64)
			v = float64(u)
		}
		if err != nil {
			return 0, fmt.Errorf("%w in %q", ErrDigit, s)
		}
		acc = acc*60 + v
	}
	return acc, nil
}

// TwosComplementHex reads hex digits as a signed two's complement value.
// The digit string is left padded to whole 32-bit words and the top bit of
// the padded value is the sign, so "FF" is 255 and "FFFFFFFF" is -1.
func TwosComplementHex(hexDigits string) (*big.Int, error) {
	clean := strings.ReplaceAll(hexDigits, "_", "")
	v, err := Accumulate(clean, 16)
	if err != nil {
		return nil, err
	}
	n := len(clean)
	bits := uint(((n + 7) &^ 7) * 4)
	if v.Bit(int(bits)-1) == 1 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	return v, nil
}

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
)

// BestInt returns the narrowest of int32, int64 or *big.Int that holds v
// exactly.
func BestInt(v *big.Int) any {
	if v.Cmp(minInt32) >= 0 && v.Cmp(maxInt32) <= 0 {
		return int32(v.Int64())
	}
	if v.IsInt64() {
		return v.Int64()
	}
	return new(big.Int).Set(v)
}

// FormatFloat renders f in normalized scientific notation with at least
// one fractional digit and the shortest exponent: 1000 is "1.0e+3" and 0.5
// is "5.0e-1". Infinities and NaN use the YAML spellings.
func FormatFloat(f float64) string {
	return FormatFloatBits(f, 64)
}

// FormatFloatBits is FormatFloat for a value that originated at bitSize
// precision, so float32 values keep their short form.
func FormatFloatBits(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return normalizeE(strconv.FormatFloat(f, 'e', -1, bitSize))
}

// FormatBigFloat is FormatFloat for arbitrary precision floats.
func FormatBigFloat(x *big.Float) string {
	if x.IsInf() {
		if x.Signbit() {
			return "-.inf"
		}
		return ".inf"
	}
	return normalizeE(x.Text('e', -1))
}

func normalizeE(s string) string {
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}

// FormatInt renders any Go integer or *big.Int as decimal text.
func FormatInt(v any) (string, bool) {
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(x), 10), true
	case *big.Int:
		if x == nil {
			return "", false
		}
		return x.String(), true
	}
	return "", false
}

// IsNumber reports whether v is a Go integer, float or big number.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, *big.Int, *big.Float:
		return true
	}
	return false
}

// Normalize maps named numeric types onto int64, uint64, float32 or
// float64 by kind. Big numbers are returned as is.
func Normalize(v any) (any, bool) {
	switch x := v.(type) {
	case *big.Int:
		return x, x != nil
	case *big.Float:
		return x, x != nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.Float32:
		return float32(rv.Float()), true
	case reflect.Float64:
		return rv.Float(), true
	}
	return nil, false
}
