package normalize

import (
	"regexp"
	"strings"
)

var (
	// Santander phrases a received transfer as
	// "Transferencia recibida De NOMBRE / ...".
	receivedFromPattern = regexp.MustCompile(` DE (.*?)(?:/|$)`)

	// "Pago a proveedores recibido NOMBRE 30123456789 ..." — the name runs
	// until the first digit.
	supplierNamePattern = regexp.MustCompile(`^([A-Z\s\.]+)\d`)

	// Generic fallbacks, Mercado Pago and others. Tried in order.
	genericSenderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`TRANSFERENCIA DE (.*)`),
		regexp.MustCompile(`TRANSFERENCIA RECIBIDA DE (.*)`),
		regexp.MustCompile(`CREDITO POR TRANSFERENCIA DE (.*)`),
		regexp.MustCompile(`CREDITO TRANSFERENCIA DE (.*)`),
		regexp.MustCompile(`^DE (.*)`),
		regexp.MustCompile(`TRANSF\. DE (.*)`),
	}

	cuitPattern       = regexp.MustCompile(`\d{2}-\d{8}-\d`)
	longNumberPattern = regexp.MustCompile(`\d{10,}`)
	nonAlphaPattern   = regexp.MustCompile(`[^A-Z ]`)
)

// bankBoilerplate is trailing noise the statements append after a name.
var bankBoilerplate = []string{
	" - BANCO", " BANCO", " S.A.", " SA", " CUIT", " CUIL", " VARIOS", "- VAR",
}

// ExtractSenderName pulls the counterparty name out of a transfer
// description. Bank-specific phrasings go first, generic patterns after.
// ok is false when no pattern applies.
func ExtractSenderName(description string) (string, bool) {
	desc := strings.ToUpper(strings.TrimSpace(description))

	if strings.Contains(desc, "TRANSFERENCIA RECIBIDA") && strings.Contains(desc, "DE ") {
		if m := receivedFromPattern.FindStringSubmatch(desc); m != nil {
			name := strings.TrimSpace(m[1])
			// Drop trailing " - ..." junk if any survived.
			name, _, _ = strings.Cut(name, " - ")
			return CleanName(name)
		}
	}

	if strings.Contains(desc, "PAGO A PROVEEDORES RECIBIDO") {
		rest := strings.TrimSpace(strings.ReplaceAll(desc, "PAGO A PROVEEDORES RECIBIDO", ""))
		if m := supplierNamePattern.FindStringSubmatch(rest); m != nil {
			return CleanName(m[1])
		}
		return CleanName(rest)
	}

	for _, pat := range genericSenderPatterns {
		if m := pat.FindStringSubmatch(desc); m != nil {
			return CleanName(m[1])
		}
	}

	return "", false
}

// CleanName strips tax-id-shaped digit groups and banking boilerplate from
// an extracted name. Remainders of length <= 3 are noise: ok is false.
func CleanName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	name = cuitPattern.ReplaceAllString(name, "")
	name = longNumberPattern.ReplaceAllString(name, "")

	for _, t := range bankBoilerplate {
		name = strings.ReplaceAll(name, t, "")
	}

	name = strings.TrimSpace(nonAlphaPattern.ReplaceAllString(name, ""))
	if len(name) <= 3 {
		return "", false
	}
	return name, true
}
