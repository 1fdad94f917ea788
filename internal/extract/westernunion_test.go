package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseWesternUnionLines(t *testing.T) {
	lines := []string{
		"MTCN Receptor Fecha de envío Remitente Fecha de pago Monto",
		"1056196357 ESTEBAN SELVAGGI 12/20/2025 AMANDA OSPINA 12/20/2025 ARS 108,010.00 UNITED STATES ARGENTINA",
	}

	receipts := parseWesternUnionLines(lines)

	if len(receipts) != 1 {
		t.Fatalf("receipts: got %d, want 1", len(receipts))
	}
	r := receipts[0]
	if r.Description != "WU 1056196357 - AMANDA OSPINA" {
		t.Errorf("description: got %q", r.Description)
	}
	if !r.Amount.Equal(decimal.NewFromInt(108010)) {
		t.Errorf("amount: got %s, want 108010", r.Amount)
	}
	// Western Union dates are US-style: 12/20 is December 20th.
	if want := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC); !r.Date.Equal(want) {
		t.Errorf("date: got %s, want %s", r.Date, want)
	}
	if r.MonthKey != "2025-12" {
		t.Errorf("month key: got %q", r.MonthKey)
	}
	if r.Source != "Western Union" {
		t.Errorf("source: got %q", r.Source)
	}
}
