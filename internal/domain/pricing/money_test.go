package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		40000:      "40,000",
		252000:     "2,52,000",
		1400000:    "14,00,000",
		50000000:   "5,00,00,000",
		-1400000:   "-14,00,000",
		1234567890: "1,23,45,67,890",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Errorf("FormatINR(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundAmount_HalfUp(t *testing.T) {
	if got := roundAmount(decimal.RequireFromString("44687.5")); got != 44688 {
		t.Fatalf("expected 44688, got %d", got)
	}
	if got := roundAmount(decimal.RequireFromString("44687.49")); got != 44687 {
		t.Fatalf("expected 44687, got %d", got)
	}
}
