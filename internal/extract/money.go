package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converts Argentine statement money text ("$ 1.234,56",
// "1.234,56-") to a decimal. Dots are thousands separators, the comma is
// the decimal mark, and a trailing hyphen means negative. Unparseable text
// comes back as zero; statements mix amounts with reference numbers and
// the caller decides which fields were supposed to be money.
func ParseMoney(text string) decimal.Decimal {
	if text == "" {
		return decimal.Zero
	}
	clean := strings.ReplaceAll(text, "$", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	if strings.HasSuffix(clean, "-") {
		clean = "-" + strings.TrimSuffix(clean, "-")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}
