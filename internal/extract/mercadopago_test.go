package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseMercadoPagoLines(t *testing.T) {
	lines := []string{
		"Detalle de movimientos",
		"03-03-2024 Pago cancelado -$ 100,00 $ 2.400,00",
		"04-03-2024 Transferencia recibida 12345 $ 1.500,00 $ 3.900,00",
		"JUAN PEREZ",
		"05-03-2024 Pago realizado -$ 200,00 $ 3.700,00",
		"Página 1 de 2",
	}

	movements := parseMercadoPagoLines(lines)

	if len(movements) != 2 {
		t.Fatalf("movements: got %d, want 2 (cancelled payment excluded)", len(movements))
	}

	first := movements[0]
	if first.Description != "Transferencia recibida 12345 JUAN PEREZ" {
		t.Errorf("description: got %q (wrapped counterparty line should be merged)", first.Description)
	}
	if !first.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("amount: got %s, want 1500 (movement column, not balance)", first.Amount)
	}
	if want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("date: got %s", first.Date)
	}

	second := movements[1]
	if second.Description != "Pago realizado" {
		t.Errorf("description: got %q (page footer must not be merged)", second.Description)
	}
	if !second.Amount.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("amount: got %s, want -200", second.Amount)
	}
}
