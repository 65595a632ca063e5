package ir

import (
	"math"
	"strconv"
	"strings"
)

type Value struct {
	Type    Type
	String  string
	Int64   *int64
	Float64 *float64
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInt(v int64) Value {
	return Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) Value {
	return Value{Type: NumberType, Float64: &f}
}

// ParseValue types a token: numeric strings and 0x hexadecimal literals
// become numbers, anything else is kept verbatim as text.
func ParseValue(s string) Value {
	if IsNumeric(s) {
		return numeric(strings.Trim(s, phpSpace))
	}
	if strings.HasPrefix(s, "0x") && hexDigits(s[2:]) {
		return hex(s[2:])
	}
	return FromString(s)
}

func (v Value) IsNumber() bool { return v.Type == NumberType }

// Text is the canonical text of v. Parsing the text of a value yields an
// equal value.
func (v Value) Text() string {
	switch {
	case v.Int64 != nil:
		return strconv.FormatInt(*v.Int64, 10)
	case v.Float64 != nil:
		return formatFloat(*v.Float64)
	}
	return v.String
}

// Any returns the Go value carried by v: int64, float64 or string.
func (v Value) Any() any {
	switch {
	case v.Int64 != nil:
		return *v.Int64
	case v.Float64 != nil:
		return *v.Float64
	}
	return v.String
}

func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch {
	case v.Int64 != nil && o.Int64 != nil:
		return *v.Int64 == *o.Int64
	case v.Float64 != nil && o.Float64 != nil:
		return *v.Float64 == *o.Float64
	case v.Type == StringType:
		return v.String == o.String
	}
	return false
}

const phpSpace = " \t\n\r\v\f"

// IsNumeric reports whether s is a decimal number, optionally signed,
// with optional fraction and exponent, surrounded by optional whitespace.
func IsNumeric(s string) bool {
	s = strings.Trim(s, phpSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := asciiDigits(s[i:])
	i += digits
	if i < len(s) && s[i] == '.' {
		f := asciiDigits(s[i+1:])
		if digits == 0 && f == 0 {
			return false
		}
		i += 1 + f
	} else if digits == 0 {
		return false
	}
	i += exp(s[i:])
	return i == len(s)
}

func numeric(s string) Value {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i)
		}
	}
	// out of range values saturate to +-Inf, err is not interesting
	f, _ := strconv.ParseFloat(s, 64)
	return FromFloat(f)
}

func hex(h string) Value {
	u, err := strconv.ParseUint(h, 16, 64)
	if err == nil && u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	f := 0.0
	for i := 0; i < len(h); i++ {
		f = f*16 + float64(hexDigit(h[i]))
	}
	return FromFloat(f)
}

func hexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexDigit(s[i]) < 0 {
			return false
		}
	}
	return true
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func asciiDigits(s string) int {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

func exp(s string) int {
	if len(s) < 2 {
		return 0
	}
	switch s[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch s[1] {
	case '+', '-':
		i++
	}
	if i == len(s) {
		return 0
	}
	n := asciiDigits(s[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// formatFloat keeps a fraction on integral floats so that the text reads
// back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
