package classify

import (
	"testing"

	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

func TestClassify(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name        string
		description string
		amount      string
		wantCat     models.Category
		wantOwn     bool
	}{
		{
			name:        "incoming own transfer",
			description: "Transferencia recibida De ESTEBAN SELVAGGI",
			amount:      "1500.00",
			wantCat:     models.CategoryOwnTransferIncome,
			wantOwn:     true,
		},
		{
			name:        "incoming own transfer by tax id",
			description: "CREDITO POR TRANSFERENCIA 20433102593",
			amount:      "900",
			wantCat:     models.CategoryOwnTransferIncome,
			wantOwn:     true,
		},
		{
			name:        "third party income",
			description: "Transferencia recibida De JUAN PEREZ",
			amount:      "2000",
			wantCat:     models.CategorySalesIncome,
			wantOwn:     false,
		},
		{
			name:        "card statement payment",
			description: "PAGO TARJETA DE CREDITO",
			amount:      "-350000",
			wantCat:     models.CategoryCardPayment,
			wantOwn:     false,
		},
		{
			name:        "card payment by brand",
			description: "PAGO VISA RESUMEN",
			amount:      "-120000",
			wantCat:     models.CategoryCardPayment,
			wantOwn:     false,
		},
		{
			name:        "debito vetoes the card reading",
			description: "PAGO TARJETA DEBITO AUTOMATICO",
			amount:      "-5000",
			wantCat:     models.CategoryExpense,
			wantOwn:     false,
		},
		{
			name:        "plain expense",
			description: "COMPRA CON TARJETA DE DEBITO CARREFOUR",
			amount:      "-840.50",
			wantCat:     models.CategoryExpense,
			wantOwn:     false,
		},
		{
			name:        "zero amount falls through to the expense branch",
			description: "AJUSTE",
			amount:      "0",
			wantCat:     models.CategoryExpense,
			wantOwn:     false,
		},
		{
			name:        "outgoing own transfer keeps the flag",
			description: "TRANSFERENCIA REALIZADA MISMO TITULAR",
			amount:      "-700",
			wantCat:     models.CategoryExpense,
			wantOwn:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			cat, own := c.Classify(tt.description, amount, "Santander")
			if cat != tt.wantCat {
				t.Errorf("category: got %q, want %q", cat, tt.wantCat)
			}
			if own != tt.wantOwn {
				t.Errorf("isOwnTransfer: got %v, want %v", own, tt.wantOwn)
			}
		})
	}
}

func TestClassifyCustomMarkers(t *testing.T) {
	c := New([]string{"ACME"})

	cat, own := c.Classify("TRANSFERENCIA DE ACME", decimal.NewFromInt(100), "MercadoPago")
	if cat != models.CategoryOwnTransferIncome || !own {
		t.Errorf("got (%q, %v), want own transfer income", cat, own)
	}

	// The defaults no longer apply once markers are overridden.
	cat, own = c.Classify("TRANSFERENCIA DE ESTEBAN", decimal.NewFromInt(100), "MercadoPago")
	if cat != models.CategorySalesIncome || own {
		t.Errorf("got (%q, %v), want third-party income", cat, own)
	}
}
