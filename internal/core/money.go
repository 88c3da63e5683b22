// Package core holds the pure data-transformation rules of the contract
// viewer: filtering, time-series aggregation, totals and display
// formatting. Every function here is total over its inputs — malformed
// values degrade to an empty or zero result, never to an error.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a raw decimal string to Money with half-up rounding
// on the third decimal place. It accepts both dot (12.34) and comma
// (12,34) separators and an optional leading sign. Empty strings, the
// absence sentinel and anything non-numeric yield an invalid Money.
//
// Examples:
//
//	ParseAmount("1234.5")  -> {123450, true}
//	ParseAmount("12,346")  -> {1235, true} (rounds up)
//	ParseAmount("N/A")     -> {0, false}
func ParseAmount(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" || s == Sentinel {
		return Money{}
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		// A bare "." is not a number.
		return Money{}
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Money{}
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return Money{}
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return Money{}
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return Money{Cents: cents, Valid: true}
}

// MoneyFromFloat converts an already-numeric source value to Money,
// rounding half away from zero to cents.
func MoneyFromFloat(v float64) Money {
	if v >= 0 {
		return Money{Cents: int64(v*100 + 0.5), Valid: true}
	}
	return Money{Cents: -int64(-v*100 + 0.5), Valid: true}
}

// BRL renders the amount as Brazilian-locale currency ("R$ 1.234,50"),
// or "" when the amount is absent.
func (m Money) BRL() string {
	if !m.Valid {
		return ""
	}
	return formatBRL(m.Cents)
}

func formatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	rem := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	s := "R$ " + b.String() + "," + twoDigits(rem)
	if neg {
		return "-" + s
	}
	return s
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
