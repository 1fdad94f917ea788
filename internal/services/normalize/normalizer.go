// Package normalize canonicalizes the free-text descriptions banks attach
// to movements into short stable merchant labels. The rules run as an
// ordered pipeline; each stage is independently testable and their
// precedence is part of the contract.
package normalize

import (
	"regexp"
	"strings"
)

// Fallback labels returned when the text cannot be reduced any further.
const (
	LabelUnknown = "DESCONOCIDO"
	LabelOther   = "OTROS"
	LabelMisc    = "VARIOS"
)

// mechanismPrefixes describe HOW money moved, not WHO received it. Order
// matters: the longer phrases must go before their substrings ("DEBITO
// AUTOMATICO" before "DEBITO").
var mechanismPrefixes = []string{
	"COMPRA CON TARJETA DE DEBITO", "DEBITO AUTOMATICO", "DEBITO DIRECTO",
	"COMPRA", "PAGO", "DEBITO", "CONSUMO", "TRANSFERENCIA REALIZADA",
}

// legalSuffixes are legal-entity and domain tails that vary per statement
// but never identify the merchant.
var legalSuffixes = []string{
	"S.A.", "S.R.L.", "SRL", "SA",
	".COM.AR", ".COM", ".NET",
}

// gatewayNames are payment gateways that prefix the real merchant in the
// description ("MERPAGO*FARMACITY").
var gatewayNames = []string{
	"MERCADOPAGO", "MERPAGO", "MP", "PAYU", "PAGOS360", "DLO", "FISERV", "DEBIN", "CREDIN",
}

// canonicalRules maps textual variants to one merchant label. Ordered
// substring match, first hit wins. Note "DIA " keeps its trailing space so
// it does not swallow e.g. "DIARIO".
type canonicalRule struct {
	key   string
	label string
}

var canonicalRules = []canonicalRule{
	{"NETFLIX", "NETFLIX"}, {"SPOTIFY", "SPOTIFY"}, {"YOUTUBE", "YOUTUBE"},
	{"UBER", "UBER"}, {"DID", "DIDI"}, {"CABIFY", "CABIFY"},
	{"PEDIDOS", "PEDIDOSYA"}, {"RAPPI", "RAPPI"},
	{"CARREFOUR", "CARREFOUR"}, {"COTO", "COTO"}, {"DIA ", "DIA"}, {"VEA", "VEA"},
	{"DISCO", "DISCO"}, {"JUMBO", "JUMBO"},
	{"FARMACITY", "FARMACITY"}, {"OPENFARMA", "OPENFARMA"},
	{"MC DONALD", "MCDONALDS"}, {"MCDONALD", "MCDONALDS"}, {"BURGER", "BURGER KING"},
	{"MOSTAZA", "MOSTAZA"}, {"STARBUCKS", "STARBUCKS"},
	{"SHELL", "SHELL"}, {"YPF", "YPF"}, {"AXION", "AXION"},
	{"TELECENTRO", "TELECENTRO"}, {"PERSONAL", "PERSONAL"}, {"MOVISTAR", "MOVISTAR"}, {"CLARO", "CLARO"},
	{"EDESUR", "EDESUR"}, {"METROGAS", "METROGAS"}, {"AYSA", "AYSA"},
	{"AFIP", "IMPUESTOS AFIP"}, {"MONOTRIBUTO", "MONOTRIBUTO"}, {"ARBA", "IMPUESTOS ARBA"}, {"AGIP", "IMPUESTOS AGIP"},
	{"HOSTINGER", "HOSTINGER"}, {"AWS", "AMAZON AWS"}, {"MERCADOLIBRE", "MERCADOLIBRE"},
}

var (
	referenceIDPattern = regexp.MustCompile(`\d{6,}`)
	delimiterPattern   = regexp.MustCompile(`[\*\-]`)
	nonAlnumPattern    = regexp.MustCompile(`[^A-Z0-9 ]`)
)

// stripMechanismPrefixes removes every transaction-mechanism phrase,
// wherever it appears in the text.
func stripMechanismPrefixes(s string) string {
	for _, p := range mechanismPrefixes {
		s = strings.ReplaceAll(s, p, "")
	}
	return s
}

// stripLegalSuffixes removes legal-entity and domain tails.
func stripLegalSuffixes(s string) string {
	for _, suf := range legalSuffixes {
		s = strings.ReplaceAll(s, suf, "")
	}
	return s
}

// stripReferenceIDs drops digit runs of length >= 6 (operation ids, CUITs).
func stripReferenceIDs(s string) string {
	return referenceIDPattern.ReplaceAllString(s, "")
}

// splitCandidates splits on "*" and "-" and keeps the non-empty parts.
func splitCandidates(s string) []string {
	var parts []string
	for _, p := range delimiterPattern.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// pickCandidate takes the first token, except when it is a payment gateway
// and a second token exists: the gateway only relayed the money, the second
// token names the actual merchant.
func pickCandidate(parts []string) string {
	candidate := parts[0]
	if len(parts) > 1 {
		for _, g := range gatewayNames {
			if strings.Contains(candidate, g) {
				return parts[1]
			}
		}
	}
	return candidate
}

// canonicalLabel resolves a candidate against the merchant table.
func canonicalLabel(candidate string) (string, bool) {
	for _, rule := range canonicalRules {
		if strings.Contains(candidate, rule.key) {
			return rule.label, true
		}
	}
	return "", false
}

// Normalize reduces a raw bank description to a canonical merchant label.
// It never fails: inputs that cannot be reduced come back as one of the
// fallback labels.
func Normalize(raw string) string {
	clean := strings.ToUpper(strings.TrimSpace(raw))
	if clean == "" {
		return LabelUnknown
	}

	clean = stripMechanismPrefixes(clean)
	clean = stripLegalSuffixes(clean)
	clean = strings.TrimSpace(stripReferenceIDs(clean))

	parts := splitCandidates(clean)
	if len(parts) == 0 {
		return LabelOther
	}

	candidate := pickCandidate(parts)
	if label, ok := canonicalLabel(candidate); ok {
		return label
	}

	candidate = strings.TrimSpace(nonAlnumPattern.ReplaceAllString(candidate, ""))
	if len(candidate) > 2 {
		return candidate
	}
	return LabelMisc
}
