package frac

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const decimalPlaces = 6

// Float2Frac approximates x as a fraction and returns it simplified.
//
// x is rendered with six fixed decimal places, trailing zeros are dropped and
// the remaining digits become the numerator over a power of ten, so 0.75
// yields 3/4 and 0.1234567 yields 123457/1000000. The sign of x is kept:
// -0.5 yields -1/2.
func Float2Frac(x float64) (Frac, error) {
	if math.IsNaN(x) {
		return Frac{}, invalidFormat("NaN has no fraction form")
	}
	if math.IsInf(x, 0) {
		return Frac{}, overflow(fmt.Sprintf("%v does not fit in int32", x))
	}

	negative := x < 0
	abs := math.Abs(x)

	s := strconv.FormatFloat(abs, 'f', decimalPlaces, 64)
	places := len(s) - strings.IndexByte(s, '.') - 1
	for places > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
		places--
	}

	bottom := int32(1)
	for i := 0; i < places; i++ {
		bottom *= 10
	}
	if bottom == 0 {
		return Frac{}, zeroDivisor("degenerate decimal " + s)
	}

	top := math.Floor(abs*float64(bottom) + 0.5)
	if top > math.MaxInt32 {
		return Frac{}, overflow(fmt.Sprintf("%v does not fit in int32", x))
	}

	f := Frac{Top: int32(top), Bottom: bottom}
	if negative {
		f.Top = -f.Top
	}
	return f.approx()
}

// Parse reads a fraction from s.
//
// Accepted forms are an integer ("25"), a simple fraction ("1/2") and a mixed
// number ("3 1/2"), each optionally preceded by a minus sign that negates the
// whole value. Leading blanks are skipped and anything after a complete
// fraction is ignored. The result is not simplified.
func Parse(s string) (Frac, error) {
	f, _, err := parseSigned(s, 0)
	return f, err
}

// ParseSimplified is like Parse but reduces the result to lowest terms.
func ParseSimplified(s string) (Frac, error) {
	f, err := Parse(s)
	if err != nil {
		return Frac{}, err
	}
	return f.approx()
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Frac {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseLine reads a whole line of input.
//
// Surrounding whitespace is trimmed. The line must start with a digit or a
// minus sign. A line that is a single decimal literal ("0.75", "-2.5", "3")
// goes through Float2Frac; anything else is read by Parse.
func ParseLine(line string) (Frac, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Frac{}, invalidFormat("empty input")
	}
	if !isDigit(s[0]) && s[0] != '-' {
		return Frac{}, invalidFormat(fmt.Sprintf("%q must start with a digit or '-'", s))
	}

	if isDecimalLiteral(s) {
		x, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return Float2Frac(x)
		}
		if errors.Is(err, strconv.ErrRange) {
			return Frac{}, overflow(fmt.Sprintf("%q does not fit in int32", s))
		}
	}
	return Parse(s)
}

// isDecimalLiteral matches -?digits(.digits)? and -?digits. only; exponents
// and hexadecimal floats are not decimal literals here.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// The grammar rules below take the input and a cursor and return the cursor
// just past what they consumed.
//
//	fraction   := wholeOrNum ( ' ' num '/' denom | '/' denom | ε )
//	wholeOrNum := digit+
//	num, denom := digit+

func skipBlanks(s string, i int) int {
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return i
}

func digitRun(s string, i int) (int32, int, error) {
	if i >= len(s) || !isDigit(s[i]) {
		return 0, i, invalidFormat(fmt.Sprintf("expected a digit at offset %d of %q", i, s))
	}
	var v int32
	for i < len(s) && isDigit(s[i]) {
		next, ok := checkedMul(v, 10)
		if ok {
			next, ok = checkedAdd(next, int32(s[i]-'0'))
		}
		if !ok {
			return 0, i, overflow(fmt.Sprintf("digit run in %q does not fit in int32", s))
		}
		v = next
		i++
	}
	return v, i, nil
}

func parseSigned(s string, i int) (Frac, int, error) {
	i = skipBlanks(s, i)
	negative := i < len(s) && s[i] == '-'
	if negative {
		i++
	}
	f, i, err := parseFraction(s, i)
	if err != nil {
		return Frac{}, i, err
	}
	if negative {
		f.Top = -f.Top
	}
	return f, i, nil
}

func parseFraction(s string, i int) (Frac, int, error) {
	i = skipBlanks(s, i)
	temp, i, err := digitRun(s, i)
	if err != nil {
		return Frac{}, i, err
	}

	var whole, num, denom int32
	switch {
	case i < len(s) && s[i] == ' ':
		j := skipBlanks(s, i)
		if j == len(s) {
			// "3 " is the integer 3.
			num, denom, i = temp, 1, j
			break
		}
		whole = temp
		if num, i, err = digitRun(s, j); err != nil {
			return Frac{}, i, err
		}
		if i >= len(s) || s[i] != '/' {
			return Frac{}, i, invalidFormat(fmt.Sprintf("expected '/' after %d %d in %q", whole, num, s))
		}
		if denom, i, err = digitRun(s, i+1); err != nil {
			return Frac{}, i, err
		}
	case i < len(s) && s[i] == '/':
		num = temp
		if denom, i, err = digitRun(s, i+1); err != nil {
			return Frac{}, i, err
		}
	default:
		num, denom = temp, 1
	}

	if denom == 0 {
		return Frac{}, i, zeroDivisor(fmt.Sprintf("zero denominator in %q", s))
	}

	top := num
	if whole != 0 {
		if top, err = mul32(denom, whole); err != nil {
			return Frac{}, i, err
		}
		if top, err = add32(top, num); err != nil {
			return Frac{}, i, err
		}
	}
	return Frac{Top: top, Bottom: denom}, i, nil
}
