package coords

import (
	"math"
	"strconv"
	"strings"
)

// Func renders a single coordinate.
type Func func(float64) string

// String renders data as a sum of labelled terms, e.g. "2*e1+3*e2". Zero
// terms are omitted, a coefficient rendering as "1" is written as its bare
// label, and the label "1" is written as the bare number. All-zero data
// renders as "0".
func String(data []float64, fn Func, labels []string) string {
	var sb strings.Builder
	for i, x := range data {
		if x == 0 {
			continue
		}
		if x < 0 {
			sb.WriteByte('-')
			x = -x
		} else if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		// FormatFloat signs +Inf
		s, label := strings.TrimPrefix(fn(x), "+"), labels[i]
		switch {
		case label == "1":
			sb.WriteString(s)
		case s == "1":
			sb.WriteString(label)
		default:
			sb.WriteString(s)
			sb.WriteByte('*')
			sb.WriteString(label)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// Plain renders the shortest decimal representation that round-trips,
// switching to exponent notation outside [1e-6, 1e21).
func Plain(x float64) string {
	if ax := math.Abs(x); ax != 0 && (ax < 1e-6 || ax >= 1e21) {
		return jsExponent(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Fixed renders with d digits after the decimal point.
func Fixed(d int) Func {
	return func(x float64) string { return strconv.FormatFloat(x, 'f', d, 64) }
}

// Exponential renders in exponent notation with d digits after the decimal
// point, e.g. "2.00e+0"; negative d uses as many digits as necessary.
func Exponential(d int) Func {
	return func(x float64) string { return jsExponent(strconv.FormatFloat(x, 'e', d, 64)) }
}

// Precision renders with p significant digits, in exponent notation when
// the exponent is less than -6 or at least p.
func Precision(p int) Func {
	if p < 1 {
		p = 1
	}
	return func(x float64) string {
		s := strconv.FormatFloat(x, 'e', p-1, 64)
		e, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
		if e < -6 || e >= p {
			return jsExponent(s)
		}
		return strconv.FormatFloat(x, 'f', p-1-e, 64)
	}
}

// jsExponent drops the leading zeros of the exponent, "2e+00" to "2e+0".
func jsExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}
