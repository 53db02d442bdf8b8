package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

// value is a number on the engine stack. Int values hold i, Real values
// hold f. Int arithmetic that overflows falls back to Real.
type value struct {
	typ stack.OutputType
	i   int64
	f   float64
}

func intValue(i int64) value    { return value{typ: TypeInt, i: i} }
func realValue(f float64) value { return value{typ: TypeReal, f: f} }

func (v value) isInt() bool { return v.typ == TypeInt }

func (v value) float() float64 {
	if v.isInt() {
		return float64(v.i)
	}
	return v.f
}

func (v value) isZero() bool {
	if v.isInt() {
		return v.i == 0
	}
	return v.f == 0
}

// parseValue reads a number literal. Non-finite spellings such as "inf"
// are not numbers.
func parseValue(tok string) (value, bool) {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return intValue(i), true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !isRangeErr(err) {
		return value{}, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return value{}, false
	}
	return realValue(f), true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// text is the display form.
func (v value) text() string {
	if v.isInt() {
		return strconv.FormatInt(v.i, 10)
	}
	switch {
	case math.IsInf(v.f, 1):
		return "inf"
	case math.IsInf(v.f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v.f, 'g', 15, 64)
}

// spoken is the screen reader form: signs and exponents in words.
func (v value) spoken() string {
	if !v.isInt() {
		switch {
		case math.IsInf(v.f, 1):
			return "infinity"
		case math.IsInf(v.f, -1):
			return "negative infinity"
		}
	}
	return speakNumber(v.text())
}

func speakNumber(s string) string {
	if mant, exp, ok := strings.Cut(s, "e"); ok {
		exp = strings.TrimPrefix(exp, "+")
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		} else if strings.HasPrefix(exp, "-") {
			exp = "-" + strings.TrimLeft(exp[1:], "0")
		}
		return speakNumber(mant) + " times ten to the power of " + speakNumber(exp)
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "negative " + rest
	}
	return s
}

// ── integer helpers ──

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func powInt(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// isqrt returns the integer square root of n and whether it is exact.
func isqrt(n int64) (int64, bool) {
	const maxRoot = 3037000499 // floor(sqrt(MaxInt64))
	r := min(int64(math.Sqrt(float64(n))), maxRoot)
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}
