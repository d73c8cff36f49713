package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// roundAmount rounds half up to a whole currency unit. Amounts are never
// negative here, so decimal's half-away-from-zero matches half up.
func roundAmount(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// FormatINR groups digits the Indian way: 1400000 -> "14,00,000".
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var out []byte
		for i, r := range []byte(head) {
			if i > 0 && (len(head)-i)%2 == 0 {
				out = append(out, ',')
			}
			out = append(out, r)
		}
		s = string(out) + "," + tail
	}
	if neg {
		return "-" + s
	}
	return s
}

func formatLakhs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
