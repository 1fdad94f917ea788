package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"NETFLIX.COM debito automatico 123456789", "NETFLIX"},
		{"", "DESCONOCIDO"},
		{"   ", "DESCONOCIDO"},
		{"PAGO", "OTROS"},
		{"XX", "VARIOS"},
		{"MP*UBER EATS 123456", "UBER"},
		{"DLO*HOSTINGER 99887766", "HOSTINGER"},
		{"COMPRA CON TARJETA DE DEBITO MC DONALD 1234 PALERMO", "MCDONALDS"},
		{"DEBITO AUTOMATICO SPOTIFY 555666777", "SPOTIFY"},
		{"CARREFOUR 999999999 SUC 12", "CARREFOUR"},
		{"PAGO AFIP MONOTRIBUTO", "IMPUESTOS AFIP"},
		{"FERRETERIA EL TORNILLO", "FERRETERIA EL TORNILLO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeGatewayPassthroughNeedsSecondToken(t *testing.T) {
	// A bare gateway with nothing after the delimiter stays as-is.
	if got := Normalize("DEBIN"); got != "DEBIN" {
		t.Errorf("got %q, want DEBIN", got)
	}
}

func TestExtractSenderName(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
		wantOK      bool
	}{
		{
			name:        "santander received transfer",
			description: "Transferencia recibida De JUAN CARLOS PEREZ / VARIOS",
			want:        "JUAN CARLOS PEREZ",
			wantOK:      true,
		},
		{
			name:        "supplier payment received",
			description: "Pago a proveedores recibido ACME GROUP 30123456789 OP 1234",
			want:        "ACME GROUP",
			wantOK:      true,
		},
		{
			name:        "generic credit transfer with tax id",
			description: "CREDITO POR TRANSFERENCIA DE MARIA LOPEZ 20-12345678-9",
			want:        "MARIA LOPEZ",
			wantOK:      true,
		},
		{
			name:        "no sender phrasing",
			description: "COMPRA SUPERMERCADO",
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSenderName(tt.description)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"JUAN PEREZ 20-12345678-9", "JUAN PEREZ", true},
		{"ACME GROUP - BANCO", "ACME GROUP", true},
		{"AB 1234567890", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CleanName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
