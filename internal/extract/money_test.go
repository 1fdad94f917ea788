package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$ 1.234,56", "1234.56"},
		{"-$ 500,00", "-500"},
		{"1.234,56-", "-1234.56"},
		{"1.234.567,89", "1234567.89"},
		{"108.010", "108010"},
		{"0,00", "0"},
		{"", "0"},
		{"N/A", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			if got := ParseMoney(tt.input); !got.Equal(want) {
				t.Errorf("ParseMoney(%q): got %s, want %s", tt.input, got, want)
			}
		})
	}
}
