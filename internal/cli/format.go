// Package cli provides formatting and rendering utilities for terminal
// output, using the office's pt-BR display conventions.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatCurrencyBRL formats a value as Brazilian reais with exactly two
// fraction digits: "R$ 1.234,56". Stable for zero, negative values, and
// large magnitudes; the sign precedes the currency prefix ("-R$ 40,00").
func FormatCurrencyBRL(v float64) string {
	sign := ""
	if math.Signbit(v) && v != 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "R$ " + groupThousands(whole) + "," + frac
}

// FormatCount renders an integer with pt-BR thousands separators.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// groupThousands inserts "." separators into a digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
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
	return b.String()
}

// FormatDelta renders an integer percentage delta with an explicit sign.
func FormatDelta(pct int) string {
	if pct > 0 {
		return fmt.Sprintf("+%d%%", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}

// dateLayouts mirrors what the backend serializes; tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a stored date or timestamp as a short pt-BR
// calendar date ("15/01/2024"). Malformed input is returned verbatim,
// a display fallback rather than an error.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// FormatActive renders an active flag the way the office's reports do.
func FormatActive(active bool) string {
	if active {
		return "Ativo"
	}
	return "Inativo"
}
