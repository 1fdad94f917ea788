package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseSantanderPages(t *testing.T) {
	pages := [][]string{{
		"Movimientos en pesos",
		"Saldo Inicial $ 5.000,00",
		"17/09/24 253622 Pago a proveedores recibido $ 1.234,56 $ 5.000,00",
		"ACME GROUP 30123456789",
		"18/09/24 Transferencia recibida De JUAN PEREZ $ 2.000,00 $ 7.000,00",
		"Tarjeta de crédito",
		"19/09/24 SUPERMERCADO CONSUMO $ 500,00",
	}}

	movements := parseSantanderPages(pages)

	if len(movements) != 2 {
		t.Fatalf("movements: got %d, want 2 (card consumptions excluded)", len(movements))
	}

	first := movements[0]
	if first.Description != "Pago a proveedores recibido ACME GROUP" {
		t.Errorf("description: got %q", first.Description)
	}
	if !first.Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("amount: got %s, want 1234.56 (movement column, not balance)", first.Amount)
	}
	if want := time.Date(2024, time.September, 17, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("date: got %s", first.Date)
	}
	if first.MonthKey != "2024-09" {
		t.Errorf("month key: got %q", first.MonthKey)
	}

	second := movements[1]
	if second.Description != "Transferencia recibida De JUAN PEREZ" {
		t.Errorf("description: got %q", second.Description)
	}
	if !second.Amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("amount: got %s, want 2000", second.Amount)
	}
}

func TestParseSantanderPagesResumesAfterCardSection(t *testing.T) {
	pages := [][]string{
		{
			"Tarjeta Santander",
			"17/09/24 CONSUMO CUOTA 1 $ 900,00",
		},
		{
			"Movimientos en dólares",
			"20/09/24 Compra de moneda extranjera $ 100,00 $ 100,00",
		},
	}

	movements := parseSantanderPages(pages)

	if len(movements) != 1 {
		t.Fatalf("movements: got %d, want 1", len(movements))
	}
	if movements[0].Description != "Compra de moneda extranjera" {
		t.Errorf("description: got %q", movements[0].Description)
	}
}
